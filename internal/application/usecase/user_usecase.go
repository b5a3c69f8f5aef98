package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios (administración).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin hash.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Update aplica los campos presentes. Un password en texto plano se vuelve a hashear antes de persistir.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) load(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}
