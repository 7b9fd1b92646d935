package clientdirectory

// ClientProfile профиль клиента из ClientDirectory
type ClientProfile struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ErrorResponse модель ошибки от ClientDirectory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
