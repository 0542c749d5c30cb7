package usecase

import (
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

// JoinedAgencyDescription descripción del log de actividad al aceptar una invitación.
const JoinedAgencyDescription = "joined the agency"

// NotificationUseCase registra logs de actividad y sirve el feed de notificaciones.
type NotificationUseCase struct {
	userRepo         repository.UserRepository
	subAccountRepo   repository.SubAccountRepository
	notificationRepo repository.NotificationRepository
	log              *logger.Logger
}

// NewNotificationUseCase construye el caso de uso con sus puertos de persistencia.
func NewNotificationUseCase(
	userRepo repository.UserRepository,
	subAccountRepo repository.SubAccountRepository,
	notificationRepo repository.NotificationRepository,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		userRepo:         userRepo,
		subAccountRepo:   subAccountRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// LogActivity agrega un registro de auditoría "<actor> | <descripción>".
//
// El actor se resuelve por el email del principal; si la petición es anónima (ej:
// formulario público de una sub-cuenta) se resuelve como un usuario de la agencia
// dueña de esa sub-cuenta. Si agency_id no viene, se deriva de la sub-cuenta.
//
// Retorna:
//   - domain.ErrInvalidInput si faltan agency_id y subaccount_id a la vez.
//   - domain.ErrUserNotFound si no se puede resolver un actor.
//
// Si al final no hay agencia derivable, no se registra nada (comportamiento heredado
// del producto original); el caso queda trazado en el log para no ocultarlo.
func (uc *NotificationUseCase) LogActivity(principal *ports.Principal, in dto.LogActivityRequest) error {
	if in.AgencyID == "" && in.SubAccountID == "" {
		return domain.ErrInvalidInput
	}

	var (
		actor *entity.User
		err   error
	)
	if principal == nil {
		actor, err = uc.userRepo.GetByAgencySubAccount(in.SubAccountID)
	} else {
		actor, err = uc.userRepo.GetByEmail(principal.Email)
	}
	if err != nil {
		return fmt.Errorf("resolver actor del log: %w", err)
	}
	if actor == nil {
		return domain.ErrUserNotFound
	}

	agencyID := in.AgencyID
	if agencyID == "" {
		sub, err := uc.subAccountRepo.GetByID(in.SubAccountID)
		if err != nil {
			return fmt.Errorf("obtener sub-cuenta: %w", err)
		}
		if sub != nil {
			agencyID = sub.AgencyID
		}
	}

	if agencyID == "" {
		uc.log.Warn().
			Str("subaccount_id", in.SubAccountID).
			Str("actor_id", actor.ID).
			Msg("log de actividad descartado: agencia no derivable")
		return nil
	}

	return uc.notificationRepo.Create(&entity.Notification{
		ID:           uuid.New().String(),
		Text:         actor.Name + " | " + in.Description,
		UserID:       actor.ID,
		AgencyID:     agencyID,
		SubAccountID: in.SubAccountID,
		CreatedAt:    time.Now(),
	})
}

// ListByAgency devuelve el feed de notificaciones de una agencia, más reciente primero.
// El caller debe pertenecer a la agencia.
func (uc *NotificationUseCase) ListByAgency(principal *ports.Principal, agencyID string, page dto.PageRequest) (*dto.NotificationListResponse, error) {
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

	page.DefaultPage()
	list, err := uc.notificationRepo.ListByAgency(agencyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar notificaciones: %w", err)
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, entityToNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
