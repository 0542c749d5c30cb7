package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// SubAccountRepository define el puerto de persistencia para SubAccount (DIP).
type SubAccountRepository interface {
	GetByID(id string) (*entity.SubAccount, error)
	ListByAgency(agencyID string) ([]*entity.SubAccount, error)
	ListSidebarOptions(subAccountID string) ([]*entity.SidebarOption, error)
}
