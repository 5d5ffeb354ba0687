package dto

type UserRequest struct {
	ID       int64  `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddressRequest struct {
	ExternalID string `json:"-"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
}
