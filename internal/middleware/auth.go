package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/WanderingWalnut/HomeRun/internal/domain/identity"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
	"github.com/WanderingWalnut/HomeRun/internal/logger"
)

// AuthMiddleware verifies the bearer credential on every request and
// stores the verified user id and email on the gin context.
func AuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := extractBearerToken(c)
		if credential == "" {
			abortUnauthorized(c, appErrors.NewAuthError("CREDENTIAL_MISSING", "Missing Authorization header"))
			return
		}

		info, err := verifier.Verify(c.Request.Context(), credential)
		if err != nil {
			logger.Warn().Err(err).Str("path", c.FullPath()).Msg("credential rejected")
			abortUnauthorized(c, err)
			return
		}

		c.Set("user_id", info.Subject)
		c.Set("user_email", info.Email)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.StatusCode != http.StatusUnauthorized {
		appErr = appErrors.ErrUnauthorized.WithError(err)
	}
	c.JSON(appErr.StatusCode, gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
	c.Abort()
}
