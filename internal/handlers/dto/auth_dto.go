package dto

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
}

// TokenRequest representa a troca de código de confirmação por token
type TokenRequest struct {
	Username         string `json:"username" binding:"required"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

// TokenResponse carrega o bearer access token emitido
type TokenResponse struct {
	Token string `json:"token"`
}
