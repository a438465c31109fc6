package api

import (
	"errors"
	"net/http"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/storage"
	"github.com/gin-gonic/gin"
)

// ListGames returns the most recently played games.
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.repo.ListRecentGames(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchGames})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(games)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeGame})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetGame returns a game by its code.
func (h *GameHandler) GetGame(c *gin.Context) {
	code, ok := parseGameCode(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidGameCode})
		return
	}
	g, err := h.repo.GetGameByCode(code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchGame})
		return
	}
	out, err := marshalGame(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeGame})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by best score, limited to top 10 by default.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	players, err := h.repo.GetTopPlayers(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayer returns aggregated stats for a player name.
func (h *GameHandler) GetPlayer(c *gin.Context) {
	p, err := h.repo.GetPlayerByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	c.JSON(http.StatusOK, out)
}
