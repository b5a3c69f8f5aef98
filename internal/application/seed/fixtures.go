package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

const (
	defaultAdminEmail       = "admin@example.com"
	defaultAdminPassword    = "adminuser"
	defaultExternalEmail    = "external@example.com"
	defaultExternalPassword = "externaluser"
)

var companyFixtures = []entity.Company{
	{NIT: "900123456-7", Name: "Tech Solutions Inc.", Address: "123 Innovation St, Silicon Valley", Phone: "+1 555-123-4567"},
	{NIT: "900123433-7", Name: "Global Software Ltd.", Address: "456 Code Avenue, Tech Park", Phone: "+1 555-987-6543"},
	{NIT: "900121103-7", Name: "Digital Enterprise S.A.", Address: "Calle 85 #15-23, Bogotá, Colombia", Phone: "+57 301-345-6789"},
}

// productFixture company es el índice en companyFixtures.
type productFixture struct {
	code     string
	name     string
	features string
	usd      string
	eur      string
	cop      string
	company  int
}

var productFixtures = []productFixture{
	{"P001", "Laptop Pro X1", "Intel Core i7, 16GB RAM, 512GB SSD", "1299.99", "1099.99", "4900000", 0},
	{"P002", "Smartphone Ultimate", `6.5" OLED, 128GB Storage, Dual Camera`, "899.99", "799.99", "3400000", 0},
	{"P003", "Wireless Headphones", "Noise Cancelling, 30hr Battery Life", "249.99", "229.99", "950000", 1},
	{"P004", "Smart Watch Pro", "Heart Rate Monitor, GPS, Water Resistant", "349.99", "319.99", "1320000", 1},
	{"P005", "Cloud Services Premium", "1TB Storage, API Access, 24/7 Support", "49.99", "44.99", "189000", 2},
}

// inventoryFixture product y company son índices en productFixtures y companyFixtures.
type inventoryFixture struct {
	product  int
	company  int
	quantity int
	notes    string
}

var inventoryFixtures = []inventoryFixture{
	{0, 0, 50, "Initial stock"},
	{1, 0, 100, "From latest shipment"},
	{2, 1, 75, "Limited edition models"},
	{3, 1, 30, "New release"},
	{4, 2, 200, "Subscription licenses"},
	{0, 1, 20, "Partner distribution"},
	{3, 2, 15, "Test units"},
}

func (f productFixture) prices() (usd, eur, cop decimal.Decimal) {
	return decimal.RequireFromString(f.usd), decimal.RequireFromString(f.eur), decimal.RequireFromString(f.cop)
}
