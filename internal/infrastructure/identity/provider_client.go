// Package identity implementa el adaptador hacia el proveedor de identidad hospedado.
// El core solo escribe metadata privada (el rol del usuario); la autenticación de la
// petición ocurre en el borde HTTP con el JWT de sesión.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/agencyhub-api/internal/application/ports"
)

// Verificar en tiempo de compilación que ProviderClient implementa IdentityProvider.
var _ ports.IdentityProvider = (*ProviderClient)(nil)

// ProviderClient adaptador REST del proveedor de identidad.
// Usa net/http de la librería estándar de Go; no requiere SDK.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewProviderClient construye el adaptador.
// Si baseURL está vacío el cliente opera en modo local: UpdateRoleMetadata es un no-op,
// el rol viaja únicamente en los claims del JWT de sesión.
func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	return &ProviderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type metadataRequest struct {
	PrivateMetadata map[string]string `json:"private_metadata"`
}

// UpdateRoleMetadata fija el rol en la metadata privada del principal en el proveedor.
func (c *ProviderClient) UpdateRoleMetadata(ctx context.Context, principalID, role string) error {
	if c.baseURL == "" {
		return nil // modo local
	}
	if principalID == "" {
		return fmt.Errorf("identity: principalID vacío")
	}

	body, err := json.Marshal(metadataRequest{
		PrivateMetadata: map[string]string{"role": role},
	})
	if err != nil {
		return fmt.Errorf("identity: serializar metadata: %w", err)
	}

	url := fmt.Sprintf("%s/v1/users/%s/metadata", c.baseURL, principalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("identity: construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: llamar al proveedor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("identity: proveedor respondió %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
