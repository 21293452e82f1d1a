package dto

// UserInput entrada de la mutación newUser.
type UserInput struct {
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateInput entrada de la mutación authenticateUser.
type AuthenticateInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario expuesto por el API. Nunca incluye el hash de password.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Email    string `json:"email"`
	Created  string `json:"created"`
}

// TokenResponse token de sesión emitido por authenticateUser.
type TokenResponse struct {
	Token string `json:"token"`
}
