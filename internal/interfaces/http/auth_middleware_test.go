package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	apphttp "github.com/jhoicas/agencyhub-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/agencyhub-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testAgencyID  = "00000000-0000-0000-0000-000000000002"
	testEmail     = "usuario@test.local"
	testIssuer    = "agencyhub-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenInput{
		UserID:   testUserID,
		AgencyID: testAgencyID,
		Email:    testEmail,
		Name:     "Usuario Test",
		Role:     role,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAgencyAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAgencyAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"AGENCY_ADMIN debe poder acceder a ruta restringida a AGENCY_ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleAgencyAdmin, body["role"], "el role debe ser AGENCY_ADMIN")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_OwnerAccedeRutaOwnerOAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAgencyOwner, entity.RoleAgencyAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAgencyOwner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"AGENCY_OWNER debe poder acceder a ruta que permite owner o admin")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_SubAccountUserBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAgencyAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSubAccountUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"SUBACCOUNT_USER no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: invitado bloqueado en ruta solo usuarios → HTTP 403.
func TestRequireRole_GuestBloqueadoEnRutaUsuarios(t *testing.T) {
	app := buildTestApp(entity.RoleSubAccountUser)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSubAccountGuest))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol (emulado con rol vacío) → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	// Generamos un token con rol vacío para simular un token legacy sin el claim.
	app := buildTestApp(entity.RoleAgencyAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenInput{
		UserID:   testUserID,
		AgencyID: testAgencyID,
		Email:    testEmail,
	}, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAgencyAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAgencyAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims y principal
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		require.NotNil(t, p, "el middleware debe construir el principal")
		return c.JSON(fiber.Map{
			"user_id":         apphttp.GetUserID(c),
			"agency_id":       apphttp.GetAgencyID(c),
			"role":            apphttp.GetRole(c),
			"principal_email": p.Email,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAgencyAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testAgencyID, body["agency_id"])
	assert.Equal(t, entity.RoleAgencyAdmin, body["role"])
	assert.Equal(t, testEmail, body["principal_email"])
}

// Petición anónima con auth opcional: debe pasar con principal nil.
func TestOptionalAuthMiddleware_SinHeader_PrincipalNil(t *testing.T) {
	app := fiber.New()
	app.Post("/open", apphttp.OptionalAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"anonymous": apphttp.GetPrincipal(c) == nil})
	})

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["anonymous"], "sin header el principal debe ser nil")
}

// Token presente pero inválido en auth opcional: sí se rechaza.
func TestOptionalAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Post("/open", apphttp.OptionalAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con claims extendidos
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenInput{
		UserID:    testUserID,
		AgencyID:  testAgencyID,
		Email:     testEmail,
		Name:      "Usuario Test",
		AvatarURL: "https://cdn.test/avatar.png",
		Role:      entity.RoleSubAccountUser,
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testAgencyID, claims.AgencyID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "https://cdn.test/avatar.png", claims.AvatarURL)
	assert.Equal(t, entity.RoleSubAccountUser, claims.Role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenInput{
		UserID: testUserID,
		Role:   entity.RoleAgencyAdmin,
	}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenInput{
		UserID: testUserID,
		Role:   entity.RoleAgencyAdmin,
	}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
