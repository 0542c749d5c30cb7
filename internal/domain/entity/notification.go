package entity

import "time"

// Notification registro inmutable de auditoría/actividad. Siempre referencia al actor
// (User) y a una Agency; SubAccountID es opcional (vacío = acción a nivel agencia).
type Notification struct {
	ID           string
	Text         string // "<nombre del actor> | <descripción>"
	UserID       string
	AgencyID     string
	SubAccountID string
	CreatedAt    time.Time
}
