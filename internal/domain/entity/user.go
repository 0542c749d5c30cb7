package entity

import "time"

// Roles válidos para User.
const (
	RoleAgencyOwner     = "AGENCY_OWNER"
	RoleAgencyAdmin     = "AGENCY_ADMIN"
	RoleSubAccountUser  = "SUBACCOUNT_USER"
	RoleSubAccountGuest = "SUBACCOUNT_GUEST"
)

// User representa un usuario del sistema. AgencyID vacío = aún no pertenece a ninguna agencia.
type User struct {
	ID           string
	AgencyID     string
	Email        string
	Name         string
	AvatarURL    string
	Role         string // ver constantes Role*
	PasswordHash string // bcrypt; vacío para usuarios provisionados por invitación (inician sesión vía proveedor)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAgencyAdministrator indica si el rol es de nivel administrativo de agencia.
// Los usuarios con estos roles se provisionan únicamente por el flujo de alta de
// agencia, nunca por invitación.
func IsAgencyAdministrator(role string) bool {
	return role == RoleAgencyOwner || role == RoleAgencyAdmin
}

// CanAdministerAgency es el predicado único de autorización para ediciones
// administrativas de una agencia: rol AGENCY_ADMIN y pertenencia a esa agencia.
func CanAdministerAgency(u *User, agencyID string) bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAgencyAdmin && u.AgencyID == agencyID
}
