package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// pageCount cuenta los objetos /Type /Page del PDF (excluye /Type /Pages).
func pageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page\n"))
}

func fixedGenerator() *MarotoReportGenerator {
	g := NewMarotoReportGenerator()
	g.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateInventoryReport_VacioUnaPagina(t *testing.T) {
	pdf, err := fixedGenerator().GenerateInventoryReport(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(pdf))
}

func TestGenerateInventoryReport_AgregaResumen(t *testing.T) {
	created := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	a := entity.Company{NIT: "900123456-7", Name: "Tech Solutions Inc."}
	b := entity.Company{NIT: "900123433-7", Name: "Global Software Ltd."}
	items := []*entity.InventoryItem{
		{ID: "1", Product: entity.Product{Code: "P001", Name: "Laptop Pro X1"}, Company: a, Quantity: 50, CreatedAt: created},
		{ID: "2", Product: entity.Product{Code: "P002", Name: "Smartphone Ultimate"}, Company: a, Quantity: 1200, CreatedAt: created},
		{ID: "3", Product: entity.Product{Code: "P001", Name: "Laptop Pro X1"}, Company: b, Quantity: 20, CreatedAt: created},
	}

	pdf, err := fixedGenerator().GenerateInventoryReport(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(pdf))
}
