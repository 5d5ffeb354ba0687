package dto

type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type UserResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	ExternalID  string  `json:"external_id"`
	AddressLine *string `json:"address_line,omitempty"`
	AddressCity *string `json:"address_city,omitempty"`
	AddressZip  *string `json:"address_zip,omitempty"`
}
