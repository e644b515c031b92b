package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pranav244872/skillswap/token"
)

////////////////////////////////////////////////////////////////////////
// Constants used in authMiddleware
////////////////////////////////////////////////////////////////////////

const (
	authorizationHeaderKey  = "authorization"         // HTTP header where token is expected
	authorizationTypeBearer = "bearer"                // Authorization type: Bearer <token>
	authorizationPayloadKey = "authorization_payload" // Context key for storing the token payload
)

////////////////////////////////////////////////////////////////////////
// Middleware to authenticate JWTs
////////////////////////////////////////////////////////////////////////

// authMiddleware checks for a valid JWT token in the "Authorization" header.
// If valid, it stores the decoded claims in Gin's context for use in handlers.
// If invalid or missing, it blocks access with a 401 Unauthorized.
func authMiddleware(tokenMaker *token.JWTMaker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 1. Get the value of the Authorization header
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 2. The expected format is: "Bearer <token>"
		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 3. Check that the type is "Bearer" (case-insensitive)
		authType := strings.ToLower(fields[0])
		if authType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 4. Validate the JWT token
		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 5. Save the claims for the handlers and continue
		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

////////////////////////////////////////////////////////////////////////
// Helpers to extract JWT claims from context
////////////////////////////////////////////////////////////////////////

// getAuthorizationPayload returns the JWT claims the middleware stored.
func getAuthorizationPayload(ctx *gin.Context) (jwt.MapClaims, error) {
	payload, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, errors.New("authorization payload not found")
	}

	claims, ok := payload.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid authorization payload type")
	}

	return claims, nil
}

// currentUserID returns the authenticated user's id. On failure it has
// already written a 401 response and the handler should just return.
func currentUserID(ctx *gin.Context) (int64, bool) {
	claims, err := getAuthorizationPayload(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return 0, false
	}

	userID, err := token.UserIDFromClaims(claims)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return 0, false
	}
	return userID, true
}
