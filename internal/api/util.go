package api

import (
	"encoding/json"
	"strconv"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// normalizeTimestamps recursively renames the untagged gorm.Model keys (ID,
// CreatedAt, UpdatedAt, DeletedAt) to snake_case so clients consistently
// receive snake_case keys.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for from, to := range map[string]string{"CreatedAt": "created_at", "UpdatedAt": "updated_at", "DeletedAt": "deleted_at", "ID": "id"} {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, then decodes
// into an interface{} and normalizes timestamp keys to snake_case. It is used
// to produce API responses with consistent snake_case keys.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}

// gameView is the public shape of a game: the stored model plus its decoded
// hand. The player token is never included.
type gameView struct {
	*game.Game
	Hand []*block.Block `json:"hand"`
}

func marshalGame(g *game.Game) (interface{}, error) {
	hand, err := g.HandBlocks()
	if err != nil {
		return nil, err
	}
	return MarshalIntoSnakeTimestamps(gameView{Game: g, Hand: hand})
}

// queryLimit reads an optional ?limit=N, falling back to the default when the
// value is missing or out of range.
func queryLimit(c *gin.Context) int {
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= maxListLimit {
			return n
		}
	}
	return defaultListLimit
}
