package middleware

import (
	"net/http"
	"strings"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserID   = "userID"
	ContextRole     = "userRole"
	ContextStatus   = "userStatus"
	ContextCategory = "userCategory"
)

// Authenticate validates the bearer token and stores the caller's identity
// on the gin context.
func Authenticate(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		claims, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Msg("Authenticate: token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextRole, claims.Role)
		ctx.Set(ContextStatus, claims.Status)
		ctx.Set(ContextCategory, claims.Category)
		ctx.Next()
	}
}

// RequireApproved rejects pending and rejected accounts before any business
// logic runs. Submission and test reads never execute for such callers.
func RequireApproved() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextStatus) != model.StatusApproved {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Account is not approved"})
			return
		}
		ctx.Next()
	}
}

// RequireRole allows only the listed roles through.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
	}
}

// UserID returns the authenticated caller's id from the context.
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(ContextUserID)
}
