package entity

import "time"

// InventoryItem es un registro de stock: cuánto de un producto reporta una empresa.
// La empresa no tiene que ser la dueña del producto (distribuidores, aliados).
//
// Product y Company siempre llegan materializados desde el repositorio (JOIN explícito);
// el reporte PDF y los handlers leen sus campos sin más consultas.
type InventoryItem struct {
	ID        string
	Product   Product
	Company   Company
	Quantity  int
	Notes     *string
	CreatedAt time.Time
}
