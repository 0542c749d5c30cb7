package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalPrincipal = "principal"
	LocalUserID    = "user_id"
	LocalAgencyID  = "agency_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT, construye el principal explícito de la
// petición y lo deja en c.Locals junto con user_id, agency_id y role.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := parseAuthHeader(c, jwtSecret)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		storeClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware construye el principal si hay token válido, pero deja pasar
// peticiones anónimas (ej: registro de actividad desde formularios públicos).
// Un token presente pero inválido sí se rechaza.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		claims, errResp := parseAuthHeader(c, jwtSecret)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		storeClaims(c, claims)
		return c.Next()
	}
}

func parseAuthHeader(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}
	}
	return claims, nil
}

func storeClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalPrincipal, &ports.Principal{
		ID:        claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.AvatarURL,
	})
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalAgencyID, claims.AgencyID)
	c.Locals(LocalRole, claims.Role)
}

// RequireRole devuelve un middleware que autoriza solo los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin claim de rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetPrincipal devuelve el principal de la petición, o nil si es anónima.
func GetPrincipal(c *fiber.Ctx) *ports.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*ports.Principal)
	return p
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetAgencyID devuelve el AgencyID del contexto (después del middleware de auth).
func GetAgencyID(c *fiber.Ctx) string {
	return localString(c, LocalAgencyID)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
