package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleExternal = "external"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, external
	IsActive     bool
}

// IsAdmin informa si el usuario tiene rol administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
