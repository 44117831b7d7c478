package dto

// LoginRequest represents the credentials submitted to obtain a token pair.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"counselor1"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// RefreshTokenRequest carries a refresh token to be exchanged for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse contains the issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in" example:"3600"`
	TokenType    string `json:"token_type" example:"Bearer"`
}
