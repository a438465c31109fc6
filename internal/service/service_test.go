package service

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

type mockRepo struct {
	games    map[string]*game.Game
	updates  int
	recorded int
}

func newMockRepo(games ...*game.Game) *mockRepo {
	m := &mockRepo{games: map[string]*game.Game{}}
	for _, g := range games {
		m.games[g.Code] = g
	}
	return m
}

func (m *mockRepo) CreateGame(g *game.Game) error {
	m.games[g.Code] = g
	return nil
}

func (m *mockRepo) GetGameByCode(code string) (*game.Game, error) {
	if g, ok := m.games[code]; ok {
		return g, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) UpdateGame(g *game.Game) error {
	m.updates++
	m.games[g.Code] = g
	return nil
}

func (m *mockRepo) RecordFinishedGame(g *game.Game) error {
	if g.StatsCounted {
		return nil
	}
	m.recorded++
	g.StatsCounted = true
	return nil
}

func ptr(b block.Block) *block.Block { return &b }

// storedGame builds an in-progress game with a fixed board and hand.
func storedGame(t *testing.T, rows, cols int, board string, hand ...*block.Block) *game.Game {
	t.Helper()
	g := &game.Game{
		Code:          "TEST0001",
		PlayerName:    "tester",
		PlayerToken:   "secret",
		Status:        game.StatusInProgress,
		Rows:          rows,
		Columns:       cols,
		HandSize:      len(hand),
		PointsPerLine: engine.DefaultPointsPerLine,
		Board:         board,
	}
	require.NoError(t, g.SetHandBlocks(hand))
	return g
}

func TestStartGame(t *testing.T) {
	repo := newMockRepo()
	g, token, err := StartGame(repo, "  alice  ", engine.DefaultRules(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, token, g.PlayerToken)
	assert.Equal(t, "alice", g.PlayerName)
	assert.Equal(t, game.StatusInProgress, g.Status)
	assert.Equal(t, constants.MsgGameStarted, g.Message)
	assert.Equal(t, strings.Repeat(".", 64), g.Board)
	assert.Len(t, g.Code, 8)
	assert.Same(t, g, repo.games[g.Code])

	hand, err := g.HandBlocks()
	require.NoError(t, err)
	assert.Len(t, hand, engine.DefaultHandSize)
	for _, b := range hand {
		assert.NotNil(t, b)
	}
}

func TestStartGame_InvalidName(t *testing.T) {
	for _, name := range []string{"", "ab", "   ", strings.Repeat("x", 25), "bad/name"} {
		_, _, err := StartGame(newMockRepo(), name, engine.DefaultRules(), rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidPlayerName, name)
	}
}

func TestStartGame_InvalidRules(t *testing.T) {
	_, _, err := StartGame(newMockRepo(), "alice", engine.Rules{Rows: 2, Columns: 2}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, engine.ErrInvalidRules)
}

func TestPlayMove_Places(t *testing.T) {
	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(1, 1)), ptr(block.NewRectangle(2, 2)), nil)
	repo := newMockRepo(g)

	got, res, err := PlayMove(repo, "test0001", "secret", MoveRequest{Slot: 0}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Points)
	assert.False(t, res.Refilled)
	assert.Equal(t, constants.MsgBlockPlaced, got.Message)
	assert.Equal(t, 1, got.Moves)
	assert.Equal(t, "#", got.Board[:1])
	assert.Equal(t, 1, repo.updates)

	hand, err := got.HandBlocks()
	require.NoError(t, err)
	assert.Nil(t, hand[0])
	assert.NotNil(t, hand[1])
}

func TestPlayMove_ClearsLine(t *testing.T) {
	board := "#######." + strings.Repeat(".", 56)
	g := storedGame(t, 8, 8, board, ptr(block.NewRectangle(1, 1)), ptr(block.NewRectangle(1, 1)))
	repo := newMockRepo(g)

	got, res, err := PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 0, Row: 0, Column: 7}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Cleared.Rows)
	assert.Equal(t, 50, res.Points)
	assert.Equal(t, 50, got.Score)
	assert.Equal(t, 1, got.LinesCleared)
	assert.Equal(t, "Cleared 1 line(s) for 50 points.", got.Message)
	assert.Equal(t, strings.Repeat(".", 64), got.Board)
}

func TestPlayMove_RefillsHand(t *testing.T) {
	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(1, 1)), nil, nil)
	repo := newMockRepo(g)

	got, res, err := PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 0, Row: 4, Column: 4}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.True(t, res.Refilled)

	hand, err := got.HandBlocks()
	require.NoError(t, err)
	require.Len(t, hand, 3)
	for _, b := range hand {
		assert.NotNil(t, b)
	}
}

func TestPlayMove_GameOverRecordsStatsOnce(t *testing.T) {
	g := storedGame(t, 3, 3, "", ptr(block.NewRectangle(1, 1)), ptr(block.NewRectangle(3, 3)))
	repo := newMockRepo(g)

	got, res, err := PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 0}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.True(t, res.Over)
	assert.Equal(t, game.StatusFinished, got.Status)
	assert.Equal(t, constants.MsgGameOver, got.Message)
	assert.True(t, got.StatsCounted)
	assert.Equal(t, 1, repo.recorded)

	_, _, err = PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 1}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, 1, repo.recorded)
}

func TestPlayMove_Errors(t *testing.T) {
	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(3, 3)), nil, nil)
	repo := newMockRepo(g)
	rng := rand.New(rand.NewSource(1))

	_, _, err := PlayMove(repo, "NOPE0000", "secret", MoveRequest{}, rng)
	assert.ErrorIs(t, err, ErrGameNotFound)

	_, _, err = PlayMove(repo, "TEST0001", "wrong", MoveRequest{}, rng)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = PlayMove(repo, "TEST0001", "", MoveRequest{}, rng)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 1}, rng)
	assert.ErrorIs(t, err, engine.ErrSlotEmpty)

	_, _, err = PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 7}, rng)
	assert.ErrorIs(t, err, engine.ErrInvalidSlot)

	_, _, err = PlayMove(repo, "TEST0001", "secret", MoveRequest{Slot: 0, Row: 6, Column: 6}, rng)
	assert.Error(t, err)
	assert.Equal(t, 0, repo.updates)
}

func TestHint(t *testing.T) {
	board := "#######." + strings.Repeat(".", 56)
	g := storedGame(t, 8, 8, board, ptr(block.NewRectangle(2, 2)), ptr(block.NewRectangle(1, 1)))
	repo := newMockRepo(g)

	s, err := Hint(repo, "TEST0001", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, 1, s.Move.Slot)
	assert.Equal(t, 0, s.Move.Row)
	assert.Equal(t, 7, s.Move.Column)

	_, err = Hint(repo, "TEST0001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResign(t *testing.T) {
	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(1, 1)))
	g.Score = 100
	repo := newMockRepo(g)

	got, err := Resign(repo, "TEST0001", "secret")
	require.NoError(t, err)
	assert.Equal(t, game.StatusResigned, got.Status)
	assert.Equal(t, constants.MsgGameResigned, got.Message)
	assert.Equal(t, 1, repo.recorded)

	_, err = Resign(repo, "TEST0001", "secret")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, 1, repo.recorded)
}

func TestHandleIdleGame(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(1, 1)))
	repo := newMockRepo(g)
	require.NoError(t, HandleIdleGame(repo, g))
	assert.Equal(t, game.StatusAbandoned, g.Status)
	assert.Equal(t, constants.MsgGameAbandoned, g.Message)
	assert.Equal(t, fixed, g.LastActivity)
	assert.Equal(t, 1, repo.recorded)
	assert.Equal(t, 1, repo.updates)
}

func TestHandleIdleGame_IgnoresFinished(t *testing.T) {
	g := storedGame(t, 8, 8, "", ptr(block.NewRectangle(1, 1)))
	g.Status = game.StatusFinished
	repo := newMockRepo(g)
	require.NoError(t, HandleIdleGame(repo, g))
	assert.Equal(t, game.StatusFinished, g.Status)
	assert.Equal(t, 0, repo.updates)
	assert.Equal(t, 0, repo.recorded)
}
