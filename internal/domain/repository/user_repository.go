package repository

import (
	"context"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByEmail devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
