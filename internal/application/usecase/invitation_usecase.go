package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
	"github.com/jhoicas/agencyhub-api/pkg/logger"
)

// AcceptTxRunner ejecuta el tramo transaccional de la aceptación de invitación:
// reclamo condicional de la invitación, alta del usuario y notificación, todo o nada.
type AcceptTxRunner interface {
	RunInvitationAcceptance(ctx context.Context, fn func(
		users repository.UserRepository,
		invitations repository.InvitationRepository,
		notifications repository.NotificationRepository,
	) error) error
}

// InvitationUseCase implementa el flujo de verificación y aceptación de invitaciones
// y el provisionamiento de usuarios de equipo.
type InvitationUseCase struct {
	tx             AcceptTxRunner
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	identity       ports.IdentityProvider
	log            *logger.Logger
}

// NewInvitationUseCase construye el caso de uso inyectando todas sus dependencias.
func NewInvitationUseCase(
	tx AcceptTxRunner,
	invitationRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	identity ports.IdentityProvider,
	log *logger.Logger,
) *InvitationUseCase {
	return &InvitationUseCase{
		tx:             tx,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		identity:       identity,
		log:            log,
	}
}

// VerifyAndAccept resuelve la invitación pendiente del principal y, si existe, la acepta:
// provisiona el usuario con el rol invitado, registra la notificación de ingreso,
// propaga el rol al proveedor de identidad y consume la invitación.
//
// La invitación se reclama con un borrado condicional dentro de la misma transacción
// que el alta del usuario: dos requests concurrentes no pueden provisionar dos veces.
// El que pierde la carrera cae a la rama de usuario existente.
//
// Resultados:
//   - Invitación pendiente aceptada → agency_id de la invitación.
//   - Rol administrativo en la invitación → agency_id vacío, invitación intacta, sin sync de rol.
//   - Sin invitación → agency_id del usuario ya existente (o vacío si no hay usuario).
//   - Sin principal → domain.ErrUnauthenticated (la capa de presentación redirige al sign-in).
func (uc *InvitationUseCase) VerifyAndAccept(ctx context.Context, principal *ports.Principal) (*dto.AcceptInvitationResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	invitation, err := uc.invitationRepo.GetPendingByEmail(principal.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar invitación pendiente: %w", err)
	}
	if invitation == nil {
		return uc.existingMembership(principal)
	}

	// Los roles administrativos solo se provisionan en el alta de agencia, nunca por
	// invitación. La invitación queda intacta y el rol no se sincroniza.
	if entity.IsAgencyAdministrator(invitation.Role) {
		uc.log.Warn().
			Str("invitation_id", invitation.ID).
			Str("role", invitation.Role).
			Msg("invitación con rol administrativo: provisionamiento rechazado")
		return &dto.AcceptInvitationResponse{}, nil
	}

	role := invitation.Role
	if role == "" {
		role = entity.RoleSubAccountUser
	}
	now := time.Now()
	newUser := &entity.User{
		ID:        principal.ID,
		AgencyID:  invitation.AgencyID,
		Email:     invitation.Email,
		Name:      principal.Name,
		AvatarURL: principal.AvatarURL,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunInvitationAcceptance(ctx, func(
		users repository.UserRepository,
		invitations repository.InvitationRepository,
		notifications repository.NotificationRepository,
	) error {
		claimed, err := invitations.DeleteIfPending(invitation.ID)
		if err != nil {
			return fmt.Errorf("reclamar invitación: %w", err)
		}
		if !claimed {
			return domain.ErrInvitationClaimed
		}
		if err := users.Create(newUser); err != nil {
			return fmt.Errorf("crear usuario de equipo: %w", err)
		}
		return notifications.Create(&entity.Notification{
			ID:        uuid.New().String(),
			Text:      newUser.Name + " | " + JoinedAgencyDescription,
			UserID:    newUser.ID,
			AgencyID:  invitation.AgencyID,
			CreatedAt: now,
		})
	})
	if errors.Is(err, domain.ErrInvitationClaimed) {
		// Otro request aceptó primero: el usuario ya debe existir.
		return uc.existingMembership(principal)
	}
	if err != nil {
		return nil, err
	}

	// El rol en el proveedor debe igualar siempre al almacenado en el usuario recién creado.
	if err := uc.identity.UpdateRoleMetadata(ctx, principal.ID, newUser.Role); err != nil {
		return nil, fmt.Errorf("propagar rol al proveedor de identidad: %w", err)
	}

	return &dto.AcceptInvitationResponse{AgencyID: invitation.AgencyID}, nil
}

// existingMembership devuelve la agencia del usuario ya registrado, o vacío si no existe.
func (uc *InvitationUseCase) existingMembership(principal *ports.Principal) (*dto.AcceptInvitationResponse, error) {
	user, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario existente: %w", err)
	}
	if user == nil {
		return &dto.AcceptInvitationResponse{}, nil
	}
	return &dto.AcceptInvitationResponse{AgencyID: user.AgencyID}, nil
}

// CreateTeamUser provisiona un usuario de equipo en la agencia indicada con el registro
// dado (se inserta tal cual, incluidos ID y timestamps del caller).
//
// Devuelve (nil, nil) si el rol del candidato es administrativo: esos usuarios nacen
// únicamente en el flujo de alta de agencia.
func (uc *InvitationUseCase) CreateTeamUser(agencyID string, user *entity.User) (*entity.User, error) {
	if entity.IsAgencyAdministrator(user.Role) {
		return nil, nil
	}
	user.AgencyID = agencyID
	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("crear usuario de equipo: %w", err)
	}
	return user, nil
}
