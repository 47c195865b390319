package http

import (
	"errors"
	"net/http"

	authdomain "github.com/Lexv0lk/token-store/internal/auth/domain"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
)

func handleError(c *gin.Context, logger logging.Logger, err error) {
	switch {
	case errors.Is(err, &domain.UnauthorizedError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidAmountError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &authdomain.InvalidCredentialsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.ItemNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &authdomain.CredentialsMismatchError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing caller identity"})
}

func abortInvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
}
