package repository

import "github.com/jhoicas/agencyhub-api/internal/domain/entity"

// AgencyRepository define el puerto de persistencia para Agency (DIP).
// La implementación vive en infrastructure.
type AgencyRepository interface {
	Create(agency *entity.Agency) error
	GetByID(id string) (*entity.Agency, error)
	Update(agency *entity.Agency) error
	ListSidebarOptions(agencyID string) ([]*entity.SidebarOption, error)
}
