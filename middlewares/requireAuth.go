package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/vastra-api/utils"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal is the authenticated caller, taken from a verified access token.
type Principal struct {
	UserID uint
	Email  string
}

// TokenVerifier checks a raw bearer token.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or malformed"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(principalKey, Principal{UserID: userID, Email: claims.Email})
		ctx.Next()
	}
}

// GetPrincipal returns the caller stored by RequireAuth.
func GetPrincipal(ctx *gin.Context) (Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}
