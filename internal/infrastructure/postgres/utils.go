package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Con nombres de constraint solo reconoce la violación de esos índices: el choque del
// índice parcial de invitaciones pendientes no debe confundirse con el de email de users.
func isUniqueViolation(err error, constraints ...string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" { // unique_violation
			return false
		}
		if len(constraints) == 0 {
			return true
		}
		for _, name := range constraints {
			if pgErr.ConstraintName == name {
				return true
			}
		}
		return false
	}
	return len(constraints) == 0 && strings.Contains(err.Error(), "23505")
}
