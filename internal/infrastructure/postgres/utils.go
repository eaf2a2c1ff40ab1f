package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Si constraint no es vacío, además exige que sea ese constraint en concreto.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return false
		}
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return constraint == "" && strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503),
// por ejemplo al borrar un usuario con deudas o un rol asignado.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "23503")
}

// nullIfEmpty convierte "" en NULL para columnas opcionales (y únicas, como
// phone_number, donde varias cadenas vacías chocarían).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// orEmpty desreferencia un *string de columna nullable.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
