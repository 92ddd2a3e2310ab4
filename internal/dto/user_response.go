package dto

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}
