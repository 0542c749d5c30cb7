package usecase

import (
	"fmt"

	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

// AccountUseCase resuelve el detalle completo del usuario autenticado: su registro
// interno, la agencia con navegación y sub-cuentas anidadas, y los permisos.
type AccountUseCase struct {
	userRepo       repository.UserRepository
	agencyRepo     repository.AgencyRepository
	subAccountRepo repository.SubAccountRepository
	permissionRepo repository.PermissionRepository
}

// NewAccountUseCase construye el caso de uso con sus puertos de persistencia.
func NewAccountUseCase(
	userRepo repository.UserRepository,
	agencyRepo repository.AgencyRepository,
	subAccountRepo repository.SubAccountRepository,
	permissionRepo repository.PermissionRepository,
) *AccountUseCase {
	return &AccountUseCase{
		userRepo:       userRepo,
		agencyRepo:     agencyRepo,
		subAccountRepo: subAccountRepo,
		permissionRepo: permissionRepo,
	}
}

// AuthUserDetails mapea el principal externo al usuario interno por email.
// Operación de solo lectura.
//
// Retorna:
//   - domain.ErrUnauthenticated si no hay principal.
//   - domain.ErrUserNotFound si ningún usuario interno coincide con el email.
func (uc *AccountUseCase) AuthUserDetails(principal *ports.Principal) (*dto.AccountDetailsResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario por email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	perms, err := uc.permissionRepo.ListByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("listar permisos: %w", err)
	}
	permOut := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		permOut = append(permOut, dto.PermissionResponse{
			ID:           p.ID,
			Email:        p.Email,
			SubAccountID: p.SubAccountID,
			Access:       p.Access,
		})
	}

	out := &dto.AccountDetailsResponse{
		User:        *entityToUserResponse(user),
		Permissions: permOut,
	}

	if user.AgencyID == "" {
		return out, nil
	}

	agency, err := uc.agencyRepo.GetByID(user.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("obtener agencia: %w", err)
	}
	if agency == nil {
		// Usuario apunta a una agencia inexistente: se devuelve sin árbol de agencia.
		return out, nil
	}

	sidebar, err := uc.agencyRepo.ListSidebarOptions(agency.ID)
	if err != nil {
		return nil, fmt.Errorf("listar navegación de agencia: %w", err)
	}

	subs, err := uc.subAccountRepo.ListByAgency(agency.ID)
	if err != nil {
		return nil, fmt.Errorf("listar sub-cuentas: %w", err)
	}
	subOut := make([]dto.SubAccountWithSidebar, 0, len(subs))
	for _, s := range subs {
		subSidebar, err := uc.subAccountRepo.ListSidebarOptions(s.ID)
		if err != nil {
			return nil, fmt.Errorf("listar navegación de sub-cuenta: %w", err)
		}
		subOut = append(subOut, dto.SubAccountWithSidebar{
			SubAccountResponse: *entityToSubAccountResponse(s),
			SidebarOptions:     entityToSidebarOptions(subSidebar),
		})
	}

	out.Agency = &dto.AgencyWithSidebar{
		AgencyResponse: *entityToAgencyResponse(agency),
		SidebarOptions: entityToSidebarOptions(sidebar),
		SubAccounts:    subOut,
	}
	return out, nil
}
