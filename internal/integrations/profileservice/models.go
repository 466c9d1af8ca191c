package profileservice

// Photographer модель профиля фотографа из ProfileService
type Photographer struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	City        string `json:"city"`
	Active      bool   `json:"active"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
