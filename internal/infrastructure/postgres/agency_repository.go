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

var _ repository.AgencyRepository = (*AgencyRepo)(nil)

// AgencyRepo implementación del puerto AgencyRepository sobre PostgreSQL.
type AgencyRepo struct {
	q Querier
}

// NewAgencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgencyRepository(q Querier) *AgencyRepo {
	return &AgencyRepo{q: q}
}

const agencyColumns = `id, name, company_email, company_phone, address, city, zip_code, state, country, agency_logo, white_label, goal, created_at, updated_at`

// Create persiste una nueva agencia.
func (r *AgencyRepo) Create(agency *entity.Agency) error {
	query := `
		INSERT INTO agencies (` + agencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		agency.ID, agency.Name, agency.CompanyEmail, agency.CompanyPhone, agency.Address,
		agency.City, agency.ZipCode, agency.State, agency.Country, agency.AgencyLogo,
		agency.WhiteLabel, agency.Goal, agency.CreatedAt, agency.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert agency: %w", err)
	}
	return nil
}

// GetByID obtiene una agencia por ID.
func (r *AgencyRepo) GetByID(id string) (*entity.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`
	var a entity.Agency
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.CompanyEmail, &a.CompanyPhone, &a.Address,
		&a.City, &a.ZipCode, &a.State, &a.Country, &a.AgencyLogo,
		&a.WhiteLabel, &a.Goal, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agency by id: %w", err)
	}
	return &a, nil
}

// Update actualiza la fila completa de la agencia (el merge parcial ocurre en el use case).
func (r *AgencyRepo) Update(agency *entity.Agency) error {
	query := `
		UPDATE agencies SET name = $2, company_email = $3, company_phone = $4, address = $5,
			city = $6, zip_code = $7, state = $8, country = $9, agency_logo = $10,
			white_label = $11, goal = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		agency.ID, agency.Name, agency.CompanyEmail, agency.CompanyPhone, agency.Address,
		agency.City, agency.ZipCode, agency.State, agency.Country, agency.AgencyLogo,
		agency.WhiteLabel, agency.Goal, agency.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agency: %w", err)
	}
	return nil
}

// ListSidebarOptions lista las opciones de navegación de la agencia.
func (r *AgencyRepo) ListSidebarOptions(agencyID string) ([]*entity.SidebarOption, error) {
	query := `
		SELECT id, name, link, icon, agency_id, sub_account_id, created_at, updated_at
		FROM sidebar_options WHERE agency_id = $1 ORDER BY name`
	return scanSidebarOptions(r.q, query, agencyID)
}

func scanSidebarOptions(q Querier, query string, args ...any) ([]*entity.SidebarOption, error) {
	rows, err := q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sidebar options: %w", err)
	}
	defer rows.Close()
	var list []*entity.SidebarOption
	for rows.Next() {
		var o entity.SidebarOption
		if err := rows.Scan(&o.ID, &o.Name, &o.Link, &o.Icon, &o.AgencyID, &o.SubAccountID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sidebar option: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
