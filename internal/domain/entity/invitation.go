package entity

import "time"

// Estados de una invitación. Una invitación PENDING por email es única (índice parcial en DB).
const (
	InvitationPending = "PENDING"
	InvitationRevoked = "REVOKED"
)

// Invitation oferta pendiente para que un email se una a una agencia con un rol dado.
// Se consume (borra) exactamente una vez al aceptarse.
type Invitation struct {
	ID        string
	Email     string
	AgencyID  string
	Role      string // rol que recibirá el usuario provisionado
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
