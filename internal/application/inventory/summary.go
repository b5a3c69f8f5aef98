package inventory

import "github.com/jhoicas/catalogo-inventario/internal/domain/entity"

// CompanySummary totales por empresa para la página de resumen del reporte.
type CompanySummary struct {
	NIT            string
	Name           string
	TotalItems     int
	UniqueProducts int
}

// SummarizeByCompany agrupa los registros por NIT en el orden en que aparece cada empresa.
// TotalItems suma cantidades; UniqueProducts cuenta códigos de producto distintos.
func SummarizeByCompany(items []*entity.InventoryItem) []CompanySummary {
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})
	var out []CompanySummary
	for _, it := range items {
		if it == nil {
			continue
		}
		nit := it.Company.NIT
		i, ok := index[nit]
		if !ok {
			i = len(out)
			index[nit] = i
			seen[nit] = make(map[string]struct{})
			out = append(out, CompanySummary{NIT: nit, Name: it.Company.Name})
		}
		out[i].TotalItems += it.Quantity
		if _, dup := seen[nit][it.Product.Code]; !dup {
			seen[nit][it.Product.Code] = struct{}{}
			out[i].UniqueProducts++
		}
	}
	return out
}
