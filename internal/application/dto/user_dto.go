package dto

// RegisterRequest entrada para registro público. El rol siempre es external.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest entrada para actualizar un usuario. Si llega Password se vuelve a hashear.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool   `json:"isActive"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser datos públicos del usuario autenticado.
type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}
