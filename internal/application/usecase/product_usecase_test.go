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
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
)

func newProductUseCase(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store := memory.NewStore()
	_, err := usecase.NewCompanyUseCase(store.Companies()).Create(context.Background(), techSolutions)
	require.NoError(t, err)
	return usecase.NewProductUseCase(store.Products(), store.Companies())
}

func laptopRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:      "P001",
		Name:      "Laptop Pro X1",
		Features:  "Intel Core i7",
		PriceUSD:  decimal.RequireFromString("1299.99"),
		PriceEUR:  decimal.RequireFromString("1099.99"),
		PriceCOP:  decimal.RequireFromString("4900000"),
		CompanyID: techSolutions.NIT,
	}
}

func TestProductUseCase_CreateResuelveEmpresa(t *testing.T) {
	uc := newProductUseCase(t)

	out, err := uc.Create(context.Background(), laptopRequest())
	require.NoError(t, err)
	require.NotNil(t, out.Company)
	assert.Equal(t, "Tech Solutions Inc.", out.Company.Name)
	assert.True(t, out.PriceUSD.Equal(decimal.RequireFromString("1299.99")))
}

func TestProductUseCase_CreateErrores(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase(t)
	_, err := uc.Create(ctx, laptopRequest())
	require.NoError(t, err)

	_, err = uc.Create(ctx, laptopRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	unknown := laptopRequest()
	unknown.Code = "P002"
	unknown.CompanyID = "000"
	_, err = uc.Create(ctx, unknown)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	zero := laptopRequest()
	zero.Code = "P003"
	zero.PriceEUR = decimal.Zero
	_, err = uc.Create(ctx, zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase(t)
	_, err := uc.Create(ctx, laptopRequest())
	require.NoError(t, err)

	price := decimal.RequireFromString("1199.00")
	out, err := uc.Update(ctx, "P001", dto.UpdateProductRequest{PriceUSD: &price})
	require.NoError(t, err)
	assert.True(t, out.PriceUSD.Equal(price))
	assert.Equal(t, "Laptop Pro X1", out.Name)

	negative := decimal.NewFromInt(-1)
	_, err = uc.Update(ctx, "P001", dto.UpdateProductRequest{PriceCOP: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	msg, err := uc.Delete(ctx, "P001")
	require.NoError(t, err)
	assert.Contains(t, msg.Message, "P001")

	_, err = uc.GetByCode(ctx, "P001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_PreciosRedondeadosYAcotados(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase(t)

	in := laptopRequest()
	in.PriceUSD = decimal.RequireFromString("10.555")
	in.PriceCOP = decimal.RequireFromString("99999999.99")
	out, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "10.56", out.PriceUSD.String())
	assert.Equal(t, "99999999.99", out.PriceCOP.String())

	stored, err := uc.GetByCode(ctx, in.Code)
	require.NoError(t, err)
	assert.Equal(t, "10.56", stored.PriceUSD.String())

	tooBig := laptopRequest()
	tooBig.Code = "P002"
	tooBig.PriceCOP = decimal.RequireFromString("100000000")
	_, err = uc.Create(ctx, tooBig)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tooBigUpdate := decimal.RequireFromString("150000000.50")
	_, err = uc.Update(ctx, in.Code, dto.UpdateProductRequest{PriceCOP: &tooBigUpdate})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
