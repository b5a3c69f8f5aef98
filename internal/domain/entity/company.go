package entity

// Company representa una empresa del sistema. El NIT es la llave natural y no cambia después de crearse.
type Company struct {
	NIT     string // NIT colombiano (con o sin dígito de verificación)
	Name    string
	Address string
	Phone   string
}
