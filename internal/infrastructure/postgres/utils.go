package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repositorios funcionan dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
	codeNumericOverflow     = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isFKViolation verifica si un error es una violación de llave foránea (23503).
func isFKViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// isNoRows incluye los IDs que no son UUID válidos: para el llamador equivalen a "no existe".
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText
}

// wrap traduce los códigos de Postgres a errores de dominio y agrega contexto.
func wrap(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isFKViolation(err):
		return fmt.Errorf("%s: registro referenciado por otra tabla: %w", op, domain.ErrConflict)
	case pgCode(err) == codeNumericOverflow:
		return fmt.Errorf("%s: valor fuera de rango: %w", op, domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// affectedOne devuelve ErrNotFound cuando un UPDATE/DELETE no tocó filas.
func affectedOne(op string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
