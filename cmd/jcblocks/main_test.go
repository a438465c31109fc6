package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf))
	out := buf.String()
	assert.Contains(t, out, "Completed rows:\t[]")
	assert.Contains(t, out, "Rectangle [3x3]:")
	assert.Contains(t, out, "Tee:")
	assert.Equal(t, 9, strings.Count(out, "Rectangle ["))
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "play", "demo"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

type idleRepoStub struct {
	idle     []game.Game
	updated  []string
	recorded int
}

func (r *idleRepoStub) CreateGame(g *game.Game) error { return nil }
func (r *idleRepoStub) GetGameByCode(code string) (*game.Game, error) {
	for i := range r.idle {
		if r.idle[i].Code == code {
			g := r.idle[i]
			return &g, nil
		}
	}
	return nil, errors.New("not found")
}
func (r *idleRepoStub) UpdateGame(g *game.Game) error {
	r.updated = append(r.updated, g.Code+":"+g.Status)
	return nil
}
func (r *idleRepoStub) RecordFinishedGame(g *game.Game) error {
	r.recorded++
	g.StatsCounted = true
	return nil
}
func (r *idleRepoStub) FindIdleGames(before time.Time) ([]game.Game, error) { return r.idle, nil }

func TestScanIdleGames(t *testing.T) {
	repo := &idleRepoStub{idle: []game.Game{
		{Code: "IDLE0001", Status: game.StatusInProgress},
		{Code: "IDLE0002", Status: game.StatusFinished},
	}}
	n := scanIdleGames(repo, time.Now())
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"IDLE0001:abandoned"}, repo.updated)
	assert.Equal(t, 1, repo.recorded)
}
