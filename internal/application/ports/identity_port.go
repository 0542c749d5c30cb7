package ports

import "context"

// Principal es la identidad autenticada externamente para la petición actual.
// Se pasa de forma explícita a cada operación del core (nil = petición anónima);
// el core nunca consulta una identidad ambiente.
type Principal struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// IdentityProvider contrato mínimo con el proveedor de identidad hospedado.
// El core solo necesita escribir el rol en la metadata privada del principal;
// la autenticación en sí ocurre en el borde HTTP.
type IdentityProvider interface {
	UpdateRoleMetadata(ctx context.Context, principalID, role string) error
}
