package http

import (
	"net/http"

	"github.com/Lexv0lk/token-store/internal/pkg/jwt"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	authenticator jwt.Authenticator
	logger        logging.Logger
}

func NewAuthHandler(authenticator jwt.Authenticator, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	token, err := h.authenticator.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
