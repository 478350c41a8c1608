package dto

// RegisterRequest is the JSON body for POST /auth/register.
// Field-level policy (minimum lengths, password confirmation) is enforced
// by the validation layer, not by binding tags, so the limits stay
// configurable.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message   string `json:"message"`
	AccountID string `json:"accountId"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
}
