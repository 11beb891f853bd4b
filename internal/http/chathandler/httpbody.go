package chathandler

import "chatrelaygo/internal/presence"

type RegisterBody struct {
	Name     string `json:"name"     binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"hunter2"`
} // @name RegisterRequest

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name StatusResponse

type ActiveUsersResponse struct {
	ActiveUsers []presence.ActiveUser `json:"activeUsers"`
} // @name ActiveUsersResponse
