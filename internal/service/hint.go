package service

import (
	"fmt"
	"math/rand"

	"github.com/avg-cs-student/jcblocks/internal/dedupe"
	"github.com/avg-cs-student/jcblocks/internal/solver"
)

// Hint suggests the best next move for a game. Concurrent requests for the
// same board share a single search.
func Hint(repo GameRepo, code, token string) (solver.Suggestion, error) {
	g, err := load(repo, code, token)
	if err != nil {
		return solver.Suggestion{}, err
	}
	if !g.IsActive() {
		return solver.Suggestion{}, ErrGameFinished
	}

	key := fmt.Sprintf("%s:%d", g.Code, g.Moves)
	v, err, _ := dedupe.HintGroup.Do(key, func() (interface{}, error) {
		// The stored hand is never empty for an active game, so the rng
		// is not consulted.
		eg, err := Restore(g, rand.New(rand.NewSource(int64(g.ID))))
		if err != nil {
			return nil, err
		}
		s, ok := solver.Hint(eg)
		if !ok {
			return nil, ErrNoMovesAvailable
		}
		return s, nil
	})
	if err != nil {
		return solver.Suggestion{}, err
	}
	return v.(solver.Suggestion), nil
}
