package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateAgencyRequest actualización parcial: solo los campos presentes (no nil) cambian.
type UpdateAgencyRequest struct {
	Name         *string          `json:"name,omitempty"`
	CompanyEmail *string          `json:"company_email,omitempty"`
	CompanyPhone *string          `json:"company_phone,omitempty"`
	Address      *string          `json:"address,omitempty"`
	City         *string          `json:"city,omitempty"`
	ZipCode      *string          `json:"zip_code,omitempty"`
	State        *string          `json:"state,omitempty"`
	Country      *string          `json:"country,omitempty"`
	AgencyLogo   *string          `json:"agency_logo,omitempty"`
	WhiteLabel   *bool            `json:"white_label,omitempty"`
	Goal         *decimal.Decimal `json:"goal,omitempty"`
}

// AgencyResponse salida de una agencia.
type AgencyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CompanyEmail string          `json:"company_email"`
	CompanyPhone string          `json:"company_phone,omitempty"`
	Address      string          `json:"address,omitempty"`
	City         string          `json:"city,omitempty"`
	ZipCode      string          `json:"zip_code,omitempty"`
	State        string          `json:"state,omitempty"`
	Country      string          `json:"country,omitempty"`
	AgencyLogo   string          `json:"agency_logo,omitempty"`
	WhiteLabel   bool            `json:"white_label"`
	Goal         decimal.Decimal `json:"goal"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SidebarOptionResponse opción de navegación de agencia o sub-cuenta.
type SidebarOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
	Icon string `json:"icon,omitempty"`
}

// SubAccountResponse salida de una sub-cuenta.
type SubAccountResponse struct {
	ID             string    `json:"id"`
	AgencyID       string    `json:"agency_id"`
	Name           string    `json:"name"`
	SubAccountLogo string    `json:"subaccount_logo,omitempty"`
	CompanyEmail   string    `json:"company_email,omitempty"`
	CompanyPhone   string    `json:"company_phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	ZipCode        string    `json:"zip_code,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
