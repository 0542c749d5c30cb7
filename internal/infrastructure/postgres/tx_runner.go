package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/agencyhub-api/internal/application/auth"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

// Verificar en tiempo de compilación los contratos transaccionales.
var (
	_ usecase.AcceptTxRunner = (*TxRunner)(nil)
	_ auth.RegisterTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvitationAcceptance inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Es el tramo atómico de la aceptación de invitación:
// reclamo de la invitación + alta del usuario + notificación.
func (r *TxRunner) RunInvitationAcceptance(ctx context.Context, fn func(
	users repository.UserRepository,
	invitations repository.InvitationRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	invitationRepo := NewInvitationRepository(tx)
	notificationRepo := NewNotificationRepository(tx)

	if err := fn(userRepo, invitationRepo, notificationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOwnerRegistration es el tramo atómico del alta de agencia: creación de la
// agencia + creación del owner. Si el owner falla (ej. email duplicado en carrera),
// el Rollback evita la agencia huérfana.
func (r *TxRunner) RunOwnerRegistration(ctx context.Context, fn func(
	users repository.UserRepository,
	agencies repository.AgencyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewAgencyRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
