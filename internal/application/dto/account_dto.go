package dto

// PermissionResponse permiso de acceso de un usuario a una sub-cuenta.
type PermissionResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	SubAccountID string `json:"subaccount_id"`
	Access       bool   `json:"access"`
}

// SubAccountWithSidebar sub-cuenta con sus opciones de navegación anidadas.
type SubAccountWithSidebar struct {
	SubAccountResponse
	SidebarOptions []SidebarOptionResponse `json:"sidebar_options"`
}

// AgencyWithSidebar agencia con opciones de navegación y sub-cuentas anidadas.
type AgencyWithSidebar struct {
	AgencyResponse
	SidebarOptions []SidebarOptionResponse `json:"sidebar_options"`
	SubAccounts    []SubAccountWithSidebar `json:"sub_accounts"`
}

// AccountDetailsResponse detalle completo del usuario autenticado: usuario,
// agencia (con navegación y sub-cuentas) y permisos.
type AccountDetailsResponse struct {
	User        UserResponse         `json:"user"`
	Agency      *AgencyWithSidebar   `json:"agency,omitempty"`
	Permissions []PermissionResponse `json:"permissions"`
}
