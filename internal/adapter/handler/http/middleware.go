package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const memberPayloadKey = "member_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(memberPayloadKey, payload)

		ctx.Next()
	}
}

// adminCheck runs after authCheck and rejects tokens without the admin role.
func adminCheck() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := getAuthPayload(ctx)
		if payload.Role != port.RoleAdmin {
			handleAbort(ctx, domain.ErrForbidden)
			return
		}

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(memberPayloadKey).(*port.TokenPayload)
}
