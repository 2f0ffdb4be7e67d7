package dto

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login, on success and on failure.
type AuthResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	UserID    uint   `json:"userId"`
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}
