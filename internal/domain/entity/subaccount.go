package entity

import "time"

// SubAccount espacio de trabajo hijo de una Agency (pertenece a exactamente una).
type SubAccount struct {
	ID             string
	AgencyID       string
	Name           string
	SubAccountLogo string
	CompanyEmail   string
	CompanyPhone   string
	Address        string
	City           string
	ZipCode        string
	State          string
	Country        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
