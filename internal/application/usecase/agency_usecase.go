package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

// AgencyUseCase lecturas y ediciones administrativas de agencias.
type AgencyUseCase struct {
	agencyRepo repository.AgencyRepository
	userRepo   repository.UserRepository
}

// NewAgencyUseCase construye el caso de uso con sus puertos de persistencia.
func NewAgencyUseCase(agencyRepo repository.AgencyRepository, userRepo repository.UserRepository) *AgencyUseCase {
	return &AgencyUseCase{agencyRepo: agencyRepo, userRepo: userRepo}
}

// GetByID devuelve una agencia. El caller debe pertenecer a ella.
func (uc *AgencyUseCase) GetByID(principal *ports.Principal, agencyID string) (*dto.AgencyResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	caller, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if caller == nil {
		return nil, domain.ErrUserNotFound
	}
	if caller.AgencyID != agencyID {
		return nil, domain.ErrUnauthorized
	}
	agency, err := uc.agencyRepo.GetByID(agencyID)
	if err != nil {
		return nil, fmt.Errorf("obtener agencia: %w", err)
	}
	if agency == nil {
		return nil, domain.ErrNotFound
	}
	return entityToAgencyResponse(agency), nil
}

// UpdateDetails autoriza y aplica una edición parcial de la agencia: solo los campos
// presentes en la petición cambian, el resto conserva su valor.
//
// Requiere principal (domain.ErrUnauthenticated si falta) y que el caller sea
// AGENCY_ADMIN de esa agencia (predicado único entity.CanAdministerAgency);
// en caso contrario domain.ErrUnauthorized.
func (uc *AgencyUseCase) UpdateDetails(principal *ports.Principal, agencyID string, in dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	caller, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if !entity.CanAdministerAgency(caller, agencyID) {
		return nil, domain.ErrUnauthorized
	}

	agency, err := uc.agencyRepo.GetByID(agencyID)
	if err != nil {
		return nil, fmt.Errorf("obtener agencia: %w", err)
	}
	if agency == nil {
		return nil, domain.ErrNotFound
	}

	mergeAgencyPatch(agency, in)
	agency.UpdatedAt = time.Now()

	if err := uc.agencyRepo.Update(agency); err != nil {
		return nil, fmt.Errorf("actualizar agencia: %w", err)
	}
	return entityToAgencyResponse(agency), nil
}

// mergeAgencyPatch copia sobre la entidad únicamente los campos no nil del patch.
func mergeAgencyPatch(a *entity.Agency, in dto.UpdateAgencyRequest) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.CompanyEmail != nil {
		a.CompanyEmail = *in.CompanyEmail
	}
	if in.CompanyPhone != nil {
		a.CompanyPhone = *in.CompanyPhone
	}
	if in.Address != nil {
		a.Address = *in.Address
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.ZipCode != nil {
		a.ZipCode = *in.ZipCode
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
	if in.AgencyLogo != nil {
		a.AgencyLogo = *in.AgencyLogo
	}
	if in.WhiteLabel != nil {
		a.WhiteLabel = *in.WhiteLabel
	}
	if in.Goal != nil {
		a.Goal = *in.Goal
	}
}
