package api

import (
	"net/http"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/keys"
	"github.com/gin-gonic/gin"
)

// PlayerTokenRequired checks the request names a well-formed game and
// carries a player token, and injects both into the context. Whether the
// token matches the game is decided by the service layer.
func PlayerTokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := parseGameCode(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidGameCode})
			return
		}
		token := strings.TrimSpace(c.GetHeader(constants.HeaderPlayerToken))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrTokenRequired})
			return
		}
		c.Set(constants.ContextKeyGameCode, code)
		c.Set(constants.ContextKeyPlayerToken, token)
		c.Next()
	}
}

// playerAuth returns the game code and token stored by PlayerTokenRequired.
func playerAuth(c *gin.Context) (code, token string) {
	return c.GetString(constants.ContextKeyGameCode), c.GetString(constants.ContextKeyPlayerToken)
}

func parseGameCode(c *gin.Context) (string, bool) {
	code := keys.NormalizeGameCode(c.Param("gameCode"))
	if !keys.ValidGameCode(code) {
		return "", false
	}
	return code, true
}
