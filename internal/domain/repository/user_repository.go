package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByAgency(agencyID string, limit, offset int) ([]*entity.User, error)
	// GetByAgencySubAccount devuelve un usuario cuya agencia posee la sub-cuenta dada.
	// Se usa para resolver el actor de un log cuando no hay sesión autenticada.
	GetByAgencySubAccount(subAccountID string) (*entity.User, error)
}
