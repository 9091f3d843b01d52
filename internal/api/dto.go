package api

// RegisterRequest is the payload for /api/register and /api/login.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse describes the authenticated account.
type UserResponse struct {
	Username string `json:"username"`
	Chips    int    `json:"chips"`
	Token    string `json:"token,omitempty"`
}

// SaveChipsRequest is the payload for /api/save-chips.
type SaveChipsRequest struct {
	Chips int `json:"chips"`
}

// PaymentIntentRequest is the payload for /api/create-payment-intent.
// Amount is in cents.
type PaymentIntentRequest struct {
	Amount int `json:"amount"`
}

// PaymentIntentResponse carries the provider's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
