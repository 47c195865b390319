package http

import (
	"net/http"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
)

type RedeemHandler struct {
	redemptions domain.RedemptionService
	logger      logging.Logger
}

func NewRedeemHandler(redemptions domain.RedemptionService, logger logging.Logger) *RedeemHandler {
	return &RedeemHandler{
		redemptions: redemptions,
		logger:      logger,
	}
}

func (h *RedeemHandler) Redeem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	itemID, ok := itemIDFrom(c)
	if !ok {
		return
	}

	redemption, err := h.redemptions.Redeem(c.Request.Context(), caller, itemID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newRedemptionResponse(redemption))
}
