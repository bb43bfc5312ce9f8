package profileservice

// Companion профиль собеседника из ProfileService
type Companion struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	RatePerHour  float64  `json:"rate_per_hour"`
	City         string   `json:"city"`
	Interests    []string `json:"interests"`
	IsActive     bool     `json:"is_active"`
	MeetingPlace string   `json:"meeting_place"`
}

// ClientProfile профиль клиента из ProfileService
type ClientProfile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	MembershipTier string `json:"membership_tier"` // free, plus, premium
	IsBlocked      bool   `json:"is_blocked"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
