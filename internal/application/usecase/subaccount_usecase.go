package usecase

import (
	"fmt"

	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

// SubAccountUseCase lecturas de sub-cuentas.
type SubAccountUseCase struct {
	subAccountRepo repository.SubAccountRepository
	userRepo       repository.UserRepository
}

// NewSubAccountUseCase construye el caso de uso con sus puertos de persistencia.
func NewSubAccountUseCase(subAccountRepo repository.SubAccountRepository, userRepo repository.UserRepository) *SubAccountUseCase {
	return &SubAccountUseCase{subAccountRepo: subAccountRepo, userRepo: userRepo}
}

// GetByID devuelve una sub-cuenta. El caller debe pertenecer a la agencia dueña.
func (uc *SubAccountUseCase) GetByID(principal *ports.Principal, id string) (*dto.SubAccountResponse, error) {
	caller, err := uc.resolveCaller(principal)
	if err != nil {
		return nil, err
	}
	sub, err := uc.subAccountRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener sub-cuenta: %w", err)
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if sub.AgencyID != caller {
		return nil, domain.ErrUnauthorized
	}
	return entityToSubAccountResponse(sub), nil
}

// ListByAgency devuelve las sub-cuentas de la agencia del caller.
func (uc *SubAccountUseCase) ListByAgency(principal *ports.Principal, agencyID string) ([]dto.SubAccountResponse, error) {
	caller, err := uc.resolveCaller(principal)
	if err != nil {
		return nil, err
	}
	if caller != agencyID {
		return nil, domain.ErrUnauthorized
	}
	subs, err := uc.subAccountRepo.ListByAgency(agencyID)
	if err != nil {
		return nil, fmt.Errorf("listar sub-cuentas: %w", err)
	}
	out := make([]dto.SubAccountResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, *entityToSubAccountResponse(s))
	}
	return out, nil
}

// resolveCaller devuelve el agency_id del usuario autenticado.
func (uc *SubAccountUseCase) resolveCaller(principal *ports.Principal) (string, error) {
	if principal == nil {
		return "", domain.ErrUnauthenticated
	}
	caller, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return "", fmt.Errorf("obtener usuario: %w", err)
	}
	if caller == nil {
		return "", domain.ErrUserNotFound
	}
	return caller.AgencyID, nil
}
