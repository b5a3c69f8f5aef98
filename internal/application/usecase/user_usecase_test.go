package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/application/auth"
	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
)

func TestUserUseCase_UpdateVuelveAHashearPassword(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	hash, err := auth.HashPassword("old-pass")
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "u1", Email: "a@example.com", PasswordHash: hash, Role: entity.RoleExternal, IsActive: true}))
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "u2", Email: "b@example.com", PasswordHash: hash, Role: entity.RoleExternal, IsActive: true}))
	uc := usecase.NewUserUseCase(store.Users())

	inactive := false
	out, err := uc.Update(ctx, "u1", dto.UpdateUserRequest{Password: strPtr("new-pass"), IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	stored, _ := store.Users().GetByID(ctx, "u1")
	assert.NotEqual(t, "new-pass", stored.PasswordHash)
	assert.NoError(t, auth.VerifyPassword(stored.PasswordHash, "new-pass"))
	assert.Error(t, auth.VerifyPassword(stored.PasswordHash, "old-pass"))

	_, err = uc.Update(ctx, "u1", dto.UpdateUserRequest{Email: strPtr("b@example.com")})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, uc.Delete(ctx, "u2"))
	_, err = uc.GetByID(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
