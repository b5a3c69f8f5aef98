package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

var _ repository.CatalogCleaner = (*TxRunner)(nil)

// clearOrder respeta las llaves foráneas: inventario -> productos -> empresas -> usuarios.
var clearOrder = []string{"inventory", "products", "companies", "users"}

// Beginner abre transacciones; lo cumple *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool Beginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool Beginner) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con la tx y hace Commit, o Rollback si fn falla.
// La tx se libera siempre, también si fn entra en pánico.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	committed = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ClearAll borra las cuatro tablas en una sola transacción.
func (r *TxRunner) ClearAll(ctx context.Context) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		for _, table := range clearOrder {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear database: delete %s: %w", table, err)
			}
		}
		return nil
	})
}
