package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WanderingWalnut/HomeRun/internal/contracts"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
)

// ExchangeToken trades a Plaid Link public token for an access token.
func (h *Handler) ExchangeToken(c *gin.Context) {
	var body contracts.ExchangeTokenRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.PlaidClient.ItemPublicTokenExchange(ctx, body.PublicToken)
	if err != nil {
		h.respondError(c, appErrors.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.ExchangeTokenResponse{
		AccessToken: result.AccessToken,
		ItemID:      result.ItemID,
	})
}

// CreateSandboxToken creates and immediately exchanges a sandbox public
// token. Only exposed when the client targets the sandbox environment.
func (h *Handler) CreateSandboxToken(c *gin.Context) {
	if !h.PlaidClient.Sandbox() {
		h.respondError(c, appErrors.ErrForbidden.WithDetails(map[string]interface{}{
			"reason": "sandbox tokens are only available in the sandbox environment",
		}))
		return
	}

	var body contracts.SandboxTokenRequest
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	publicToken, err := h.PlaidClient.SandboxPublicTokenCreate(ctx, body.InstitutionID)
	if err != nil {
		h.respondError(c, appErrors.NewProviderError(err))
		return
	}

	result, err := h.PlaidClient.ItemPublicTokenExchange(ctx, publicToken)
	if err != nil {
		h.respondError(c, appErrors.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.SandboxTokenResponse{
		AccessToken: result.AccessToken,
		ItemID:      result.ItemID,
	})
}
