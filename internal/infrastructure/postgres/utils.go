package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/plywood-inventory/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// gatewayError envuelve err como domain.GatewayError con el texto que reporta PostgreSQL
// (sin el prefijo "ERROR: ... (SQLSTATE)").
func gatewayError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.GatewayError{Op: op, Table: table, Message: pgErr.Message, Err: err}
	}
	return domain.NewGatewayError(op, table, err)
}
