package api

import (
	"math/rand"
	"sync"

	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo  storage.Repository
	rules engine.Rules

	// mu serialises state changes; it also guards rng, which is not safe
	// for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGameHandler creates a new GameHandler that starts games with the given
// rules.
func NewGameHandler(repo storage.Repository, rules engine.Rules, rng *rand.Rand) *GameHandler {
	return &GameHandler{repo: repo, rules: rules, rng: rng}
}
