package api

import (
	"net/http"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateGamePayload struct {
	PlayerName string `json:"player_name"`
}

// CreateGame starts a new game and returns its code together with the token
// needed to play it.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	h.mu.Lock()
	g, token, err := service.StartGame(h.repo, req.PlayerName, h.rules, h.rng)
	h.mu.Unlock()
	if err != nil {
		respondError(c, err, constants.ErrFailedCreateGame)
		return
	}

	out, err := marshalGame(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeGame})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"code":         g.Code,
		"player_token": token,
		"game":         out,
	})
}

// Resign ends the game early. The score so far still counts.
func (h *GameHandler) Resign(c *gin.Context) {
	code, token := playerAuth(c)

	h.mu.Lock()
	g, err := service.Resign(h.repo, code, token)
	h.mu.Unlock()
	if err != nil {
		respondError(c, err, constants.ErrFailedResign)
		return
	}

	out, err := marshalGame(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: g.Message, "game": out})
}
