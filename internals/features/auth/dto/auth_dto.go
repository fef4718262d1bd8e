package dto

type LoginRequest struct {
	CardCode string `json:"card_code" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type CardScanRequest struct {
	CardCode string `json:"card_code" validate:"required"`
}

type AdminInfo struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	GymName string `json:"gym_name"`
	Plan    string `json:"plan"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	AdminInfo   AdminInfo `json:"admin_info"`
}
