package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
	"github.com/WanderingWalnut/HomeRun/internal/logger"
	"github.com/WanderingWalnut/HomeRun/internal/plaid"
)

type Handler struct {
	ProgressService *progress.Service
	PlaidClient     *plaid.Client
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", appErrors.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", appErrors.ErrUnauthorized
	}

	return id, nil
}

// accessToken pulls the provider credential from the query string. Its
// presence is validated here, at the caller boundary, so domain code
// never sees a missing credential.
func (h *Handler) accessToken(c *gin.Context) (string, error) {
	token := c.Query("access_token")
	if token == "" {
		return "", appErrors.NewValidationError("access_token", "is required")
	}
	return token, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
