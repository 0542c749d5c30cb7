package reports

import (
	"fmt"
	"time"

	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

// maxReportEntries tope de filas del reporte para mantener el PDF en una descarga razonable.
const maxReportEntries = 200

// ActivityReportUseCase genera el reporte PDF de actividad reciente de una agencia.
type ActivityReportUseCase struct {
	agencyRepo       repository.AgencyRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	generator        ActivityPDFGenerator
}

// NewActivityReportUseCase construye el caso de uso inyectando sus dependencias.
func NewActivityReportUseCase(
	agencyRepo repository.AgencyRepository,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	generator ActivityPDFGenerator,
) *ActivityReportUseCase {
	return &ActivityReportUseCase{
		agencyRepo:       agencyRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		generator:        generator,
	}
}

// Generate arma el reporte de la agencia con sus notificaciones más recientes.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrUnauthenticated si no hay principal.
//   - domain.ErrUnauthorized si el caller no es administrador de esa agencia.
//   - domain.ErrNotFound si la agencia no existe.
func (uc *ActivityReportUseCase) Generate(principal *ports.Principal, agencyID string, limit int) (pdfBytes []byte, filename string, err error) {
	if principal == nil {
		return nil, "", domain.ErrUnauthenticated
	}
	caller, err := uc.userRepo.GetByEmail(principal.Email)
	if err != nil {
		return nil, "", fmt.Errorf("obtener usuario: %w", err)
	}
	if caller == nil {
		return nil, "", domain.ErrUserNotFound
	}
	if caller.AgencyID != agencyID || !entity.IsAgencyAdministrator(caller.Role) {
		return nil, "", domain.ErrUnauthorized
	}

	agency, err := uc.agencyRepo.GetByID(agencyID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener agencia: %w", err)
	}
	if agency == nil {
		return nil, "", domain.ErrNotFound
	}

	if limit <= 0 || limit > maxReportEntries {
		limit = maxReportEntries
	}
	notifications, err := uc.notificationRepo.ListByAgency(agencyID, limit, 0)
	if err != nil {
		return nil, "", fmt.Errorf("listar notificaciones: %w", err)
	}

	data := ActivityReportData{
		AgencyName:  agency.Name,
		AgencyLogo:  agency.AgencyLogo,
		GeneratedAt: time.Now(),
	}
	for _, n := range notifications {
		data.Entries = append(data.Entries, ActivityReportEntry{
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		})
	}

	out, err := uc.generator.GenerateActivityReport(data)
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte: %w", err)
	}
	filename = fmt.Sprintf("actividad-%s-%s.pdf", agency.ID, data.GeneratedAt.Format("20060102"))
	return out, filename, nil
}
