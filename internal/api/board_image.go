package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avg-cs-student/jcblocks/internal/canvas"
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/dedupe"
	"github.com/avg-cs-student/jcblocks/internal/imageutil"
	"github.com/avg-cs-student/jcblocks/internal/storage"
	"github.com/gin-gonic/gin"
)

// BoardImage serves the current board as a PNG. Optional query parameters:
// cell (pixels per cell) and width (scale the result to this many pixels).
func (h *GameHandler) BoardImage(c *gin.Context) {
	code, ok := parseGameCode(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidGameCode})
		return
	}
	cell := imageutil.DefaultCellSize
	if s := c.Query("cell"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < imageutil.MinCellSize || n > imageutil.MaxCellSize {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidImageCellSize})
			return
		}
		cell = n
	}
	width := 0
	if s := c.Query("width"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		width = n
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

	key := fmt.Sprintf("%s:%d:%d:%d", g.Code, g.Moves, cell, width)
	v, err, _ := dedupe.BoardImageGroup.Do(key, func() (interface{}, error) {
		board, err := canvas.Decode(g.Rows, g.Columns, g.Board)
		if err != nil {
			return nil, err
		}
		return imageutil.BoardPNG(board, cell, width)
	})
	if err != nil {
		if errors.Is(err, imageutil.ErrInvalidSize) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}

	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.Data(http.StatusOK, constants.ContentTypePNG, v.([]byte))
}
