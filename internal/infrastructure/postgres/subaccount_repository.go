package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
)

var _ repository.SubAccountRepository = (*SubAccountRepo)(nil)

// SubAccountRepo implementación del puerto SubAccountRepository sobre PostgreSQL.
type SubAccountRepo struct {
	q Querier
}

// NewSubAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubAccountRepository(q Querier) *SubAccountRepo {
	return &SubAccountRepo{q: q}
}

const subAccountColumns = `id, agency_id, name, subaccount_logo, company_email, company_phone, address, city, zip_code, state, country, created_at, updated_at`

// GetByID obtiene una sub-cuenta por ID.
func (r *SubAccountRepo) GetByID(id string) (*entity.SubAccount, error) {
	query := `SELECT ` + subAccountColumns + ` FROM sub_accounts WHERE id = $1`
	var s entity.SubAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AgencyID, &s.Name, &s.SubAccountLogo, &s.CompanyEmail, &s.CompanyPhone,
		&s.Address, &s.City, &s.ZipCode, &s.State, &s.Country, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub account by id: %w", err)
	}
	return &s, nil
}

// ListByAgency lista las sub-cuentas de una agencia.
func (r *SubAccountRepo) ListByAgency(agencyID string) ([]*entity.SubAccount, error) {
	query := `SELECT ` + subAccountColumns + ` FROM sub_accounts WHERE agency_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("list sub accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubAccount
	for rows.Next() {
		var s entity.SubAccount
		if err := rows.Scan(&s.ID, &s.AgencyID, &s.Name, &s.SubAccountLogo, &s.CompanyEmail, &s.CompanyPhone,
			&s.Address, &s.City, &s.ZipCode, &s.State, &s.Country, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sub account: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListSidebarOptions lista las opciones de navegación de la sub-cuenta.
func (r *SubAccountRepo) ListSidebarOptions(subAccountID string) ([]*entity.SidebarOption, error) {
	query := `
		SELECT id, name, link, icon, agency_id, sub_account_id, created_at, updated_at
		FROM sidebar_options WHERE sub_account_id = $1 ORDER BY name`
	return scanSidebarOptions(r.q, query, subAccountID)
}
