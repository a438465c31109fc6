package api

import (
	"net/http"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/service"

	"github.com/gin-gonic/gin"
)

type MovePayload struct {
	Slot     *int `json:"slot"`
	Rotation int  `json:"rotation"`
	Row      *int `json:"row"`
	Column   *int `json:"column"`
}

// PlayMove places a block from the player's hand.
func (h *GameHandler) PlayMove(c *gin.Context) {
	var req MovePayload
	if err := c.ShouldBindJSON(&req); err != nil || req.Slot == nil || req.Row == nil || req.Column == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code, token := playerAuth(c)
	move := service.MoveRequest{Slot: *req.Slot, Rotation: req.Rotation, Row: *req.Row, Column: *req.Column}

	h.mu.Lock()
	g, res, err := service.PlayMove(h.repo, code, token, move, h.rng)
	h.mu.Unlock()
	if err != nil {
		respondError(c, err, constants.ErrFailedStoreMove)
		return
	}

	out, err := marshalGame(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeGame})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: g.Message,
		"result":                 res,
		"game":                   out,
	})
}

// Hint suggests the move that clears the most lines.
func (h *GameHandler) Hint(c *gin.Context) {
	code, token := playerAuth(c)
	s, err := service.Hint(h.repo, code, token)
	if err != nil {
		respondError(c, err, constants.ErrFailedComputeHint)
		return
	}
	c.JSON(http.StatusOK, s)
}
