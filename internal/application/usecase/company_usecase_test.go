package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

var techSolutions = dto.CreateCompanyRequest{
	NIT: "900123456-7", Name: "Tech Solutions Inc.", Address: "123 Innovation St", Phone: "+1 555-123-4567",
}

func TestCompanyUseCase_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())

	created, err := uc.Create(ctx, techSolutions)
	require.NoError(t, err)
	assert.Equal(t, "900123456-7", created.NIT)

	_, err = uc.Create(ctx, techSolutions)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := uc.Update(ctx, "900123456-7", dto.UpdateCompanyRequest{Phone: strPtr("+57 300")})
	require.NoError(t, err)
	assert.Equal(t, "+57 300", updated.Phone)
	assert.Equal(t, "Tech Solutions Inc.", updated.Name)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, "900123456-7"))
	_, err = uc.GetByNIT(ctx, "900123456-7")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUseCase_CreateValida(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{NIT: "  ", Name: "x", Address: "y", Phone: "z"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUseCase_DeleteReferenciadaConflicto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewCompanyUseCase(store.Companies())
	_, err := uc.Create(ctx, techSolutions)
	require.NoError(t, err)
	owner, _ := store.Companies().GetByNIT(ctx, techSolutions.NIT)
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		Code: "P001", Name: "Laptop", Features: "f",
		PriceUSD: decimal.NewFromInt(1), PriceEUR: decimal.NewFromInt(1), PriceCOP: decimal.NewFromInt(1),
		Company: owner,
	}))

	err = uc.Delete(ctx, techSolutions.NIT)
	require.ErrorIs(t, err, domain.ErrConflict)
}
