package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
	DeviceID    string `json:"device_id,omitempty" example:"web-uuid-123"`
}

// RegisterRequest represents the registration request body
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username    string `json:"username" example:"alice"`
	Password    string `json:"password" example:"Secretp@ssw0rd"`
	DisplayName string `json:"display_name,omitempty" example:"Alice"`
	DeviceID    string `json:"device_id,omitempty" example:"web-uuid-123"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Secretp@ssw0rd"`
	DeviceID string `json:"device_id,omitempty" example:"web-uuid-123"`
}

// AccountResponse is the public view of an account.
// swagger:model AccountResponse
type AccountResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
}
