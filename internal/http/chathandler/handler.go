package chathandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatrelaygo/internal/presence"
	"chatrelaygo/internal/services/register"
)

type Handler struct {
	svc register.IRegisterService
	reg *presence.Registry
}

func New(svc register.IRegisterService, reg *presence.Registry) *Handler {
	return &Handler{svc: svc, reg: reg}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/register", h.register)
	r.GET("/active-users", h.activeUsers)
}

func (h *Handler) register(ginCtx *gin.Context) {
	var body RegisterBody
	if err := ginCtx.ShouldBindJSON(&body); err != nil {
		ginCtx.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: err.Error()})
		return
	}

	err := h.svc.Register(ginCtx.Request.Context(), body.Name, body.Password)
	switch {
	case errors.Is(err, register.ErrUserExists):
		ginCtx.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "User already exists"})
	case err != nil:
		// Store trouble after startup is not fatal: log and keep serving.
		zap.L().Error("register", zap.Error(err))
		ginCtx.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "An error occurred"})
	default:
		ginCtx.JSON(http.StatusCreated, StatusResponse{Success: true, Message: "User registered successfully"})
	}
}

// activeUsers serves the global directory: (name, room) pairs for every
// connection that has joined a room, with no connection identity attached.
func (h *Handler) activeUsers(ginCtx *gin.Context) {
	ginCtx.JSON(http.StatusOK, ActiveUsersResponse{ActiveUsers: h.reg.ListAll()})
}
