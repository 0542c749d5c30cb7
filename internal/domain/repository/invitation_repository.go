package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// InvitationRepository define el puerto de persistencia para Invitation (DIP).
type InvitationRepository interface {
	Create(invitation *entity.Invitation) error
	// GetPendingByEmail devuelve la invitación PENDING del email, o nil si no hay.
	GetPendingByEmail(email string) (*entity.Invitation, error)
	// DeleteIfPending borra la invitación solo si sigue PENDING. Devuelve false si
	// otro request ya la reclamó (borrado condicional, cierra la carrera de aceptación).
	DeleteIfPending(id string) (bool, error)
}
