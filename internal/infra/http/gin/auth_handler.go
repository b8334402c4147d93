package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"holidaze/internal/app/commands"
	authapp "holidaze/internal/app/handlers/auth"
)

type AuthHandler struct {
	Commands commands.Bus
	Logger   *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	result, err := commands.Dispatch[authapp.LoginCommand, *authapp.LoginResult](c.Request.Context(), h.Commands, authapp.LoginCommand{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h AuthHandler) Logout(c *gin.Context) {
	if _, err := commands.Dispatch[authapp.LogoutCommand, *struct{}](c.Request.Context(), h.Commands, authapp.LogoutCommand{}); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ AuthHTTP = AuthHandler{}
