package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agency representa la organización/tenant del sistema. Posee usuarios y sub-cuentas.
type Agency struct {
	ID           string
	Name         string
	CompanyEmail string
	CompanyPhone string
	Address      string
	City         string
	ZipCode      string
	State        string
	Country      string
	AgencyLogo   string
	WhiteLabel   bool
	Goal         decimal.Decimal // meta numérica mensual de la agencia (NUMERIC en DB)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SidebarOption opción de navegación configurable. Pertenece a una agencia o a una
// sub-cuenta (exactamente uno de AgencyID/SubAccountID no vacío).
type SidebarOption struct {
	ID           string
	Name         string
	Link         string
	Icon         string
	AgencyID     string
	SubAccountID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
