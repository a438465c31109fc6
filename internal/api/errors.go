package api

import (
	"errors"
	"net/http"

	"github.com/avg-cs-student/jcblocks/internal/canvas"
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/logging"
	"github.com/avg-cs-student/jcblocks/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service and engine errors onto HTTP responses. Anything
// unrecognised is logged and reported as a 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status, msg = http.StatusNotFound, constants.ErrGameNotFound
	case errors.Is(err, service.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, constants.ErrInvalidToken
	case errors.Is(err, service.ErrInvalidPlayerName):
		status, msg = http.StatusBadRequest, constants.ErrInvalidPlayerName
	case errors.Is(err, service.ErrGameFinished), errors.Is(err, engine.ErrGameOver):
		status, msg = http.StatusConflict, constants.ErrGameFinished
	case errors.Is(err, game.ErrStaleGame):
		status, msg = http.StatusConflict, constants.ErrGameChanged
	case errors.Is(err, service.ErrNoMovesAvailable):
		status, msg = http.StatusConflict, constants.ErrNoMovesAvailable
	case errors.Is(err, engine.ErrInvalidSlot):
		status, msg = http.StatusBadRequest, constants.ErrInvalidSlot
	case errors.Is(err, engine.ErrSlotEmpty):
		status, msg = http.StatusConflict, constants.ErrSlotEmpty
	case errors.Is(err, canvas.ErrDoesNotFit):
		status, msg = http.StatusConflict, constants.ErrBlockDoesNotFit
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}
