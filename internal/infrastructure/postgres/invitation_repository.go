package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

// Create persiste una invitación. El índice único parcial (email, status=PENDING)
// garantiza a lo sumo una invitación pendiente por email.
func (r *InvitationRepo) Create(invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, email, agency_id, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.Email, invitation.AgencyID, invitation.Role,
		invitation.Status, invitation.CreatedAt, invitation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uq_invitations_pending_email") {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetPendingByEmail devuelve la invitación PENDING del email, o nil si no hay.
func (r *InvitationRepo) GetPendingByEmail(email string) (*entity.Invitation, error) {
	query := `
		SELECT id, email, agency_id, role, status, created_at, updated_at
		FROM invitations WHERE email = $1 AND status = $2 LIMIT 1`
	var i entity.Invitation
	err := r.q.QueryRow(context.Background(), query, email, entity.InvitationPending).Scan(
		&i.ID, &i.Email, &i.AgencyID, &i.Role, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending invitation: %w", err)
	}
	return &i, nil
}

// DeleteIfPending borra la invitación solo si sigue PENDING. Devuelve false cuando
// cero filas afectadas (otro request ya la reclamó).
func (r *InvitationRepo) DeleteIfPending(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM invitations WHERE id = $1 AND status = $2`, id, entity.InvitationPending)
	if err != nil {
		return false, fmt.Errorf("delete invitation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
