package storage

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := OpenAndMigrate(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewSQLiteRepository(db)
}

func newGame(code, player string, active time.Time) *game.Game {
	return &game.Game{
		Code:         code,
		PlayerName:   player,
		PlayerToken:  "token-" + code,
		Status:       game.StatusInProgress,
		Rows:         8,
		Columns:      8,
		LastActivity: active,
	}
}

func TestCreateAndGetGame(t *testing.T) {
	repo := newTestRepo(t)
	g := newGame("ABCD1234", "alice", time.Now())
	require.NoError(t, repo.CreateGame(g))
	assert.NotZero(t, g.ID)

	got, err := repo.GetGameByCode("ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.PlayerName)
	assert.Equal(t, "token-ABCD1234", got.PlayerToken)

	_, err = repo.GetGameByCode("ZZZZ9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateGame(t *testing.T) {
	repo := newTestRepo(t)
	g := newGame("UPDT0001", "bob", time.Now())
	require.NoError(t, repo.CreateGame(g))

	g.Score = 150
	g.Board = strings.Repeat(".", 64)
	require.NoError(t, repo.UpdateGame(g))

	got, err := repo.GetGameByCode("UPDT0001")
	require.NoError(t, err)
	assert.Equal(t, 150, got.Score)
	assert.Len(t, got.Board, 64)
}

func TestUpdateGame_RejectsStaleCopy(t *testing.T) {
	repo := newTestRepo(t)
	g := newGame("STAL0001", "bob", time.Now())
	require.NoError(t, repo.CreateGame(g))

	first, err := repo.GetGameByCode("STAL0001")
	require.NoError(t, err)
	second, err := repo.GetGameByCode("STAL0001")
	require.NoError(t, err)

	first.Moves = 1
	require.NoError(t, repo.UpdateGame(first))
	assert.Equal(t, 1, first.Revision)

	second.Status = game.StatusAbandoned
	assert.ErrorIs(t, repo.UpdateGame(second), game.ErrStaleGame)

	first.Status = game.StatusAbandoned
	require.NoError(t, repo.UpdateGame(first))

	// Ended games take no further writes, even at the current revision.
	first.Status = game.StatusInProgress
	assert.ErrorIs(t, repo.UpdateGame(first), game.ErrStaleGame)

	stored, err := repo.GetGameByCode("STAL0001")
	require.NoError(t, err)
	assert.Equal(t, game.StatusAbandoned, stored.Status)
	assert.Equal(t, 1, stored.Moves)
	assert.Equal(t, 2, stored.Revision)
}

func TestRecordFinishedGame_StaleCopyCountsOnce(t *testing.T) {
	repo := newTestRepo(t)
	g := newGame("STAL0002", "ivy", time.Now())
	require.NoError(t, repo.CreateGame(g))

	a, err := repo.GetGameByCode("STAL0002")
	require.NoError(t, err)
	b, err := repo.GetGameByCode("STAL0002")
	require.NoError(t, err)

	require.NoError(t, repo.RecordFinishedGame(a))
	require.NoError(t, repo.RecordFinishedGame(b))
	assert.True(t, b.StatsCounted)

	p, err := repo.GetPlayerByName("ivy")
	require.NoError(t, err)
	assert.Equal(t, 1, p.GamesPlayed)
}

func TestListRecentGames(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.CreateGame(newGame(fmt.Sprintf("LIST000%d", i), "carol", now.Add(time.Duration(i)*time.Minute))))
	}

	games, err := repo.ListRecentGames(2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "LIST0003", games[0].Code)
	assert.Equal(t, "LIST0002", games[1].Code)
}

func TestFindIdleGames(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()
	stale := newGame("IDLE0001", "dave", now.Add(-time.Hour))
	fresh := newGame("IDLE0002", "dave", now)
	done := newGame("IDLE0003", "dave", now.Add(-time.Hour))
	done.Status = game.StatusFinished
	for _, g := range []*game.Game{stale, fresh, done} {
		require.NoError(t, repo.CreateGame(g))
	}

	idle, err := repo.FindIdleGames(now.Add(-30 * time.Minute))
	require.NoError(t, err)
	require.Len(t, idle, 1)
	assert.Equal(t, "IDLE0001", idle[0].Code)
}

func TestRecordFinishedGameOnce(t *testing.T) {
	repo := newTestRepo(t)
	g := newGame("DONE0001", "erin", time.Now())
	require.NoError(t, repo.CreateGame(g))

	g.Status = game.StatusFinished
	g.Score = 200
	g.LinesCleared = 4
	require.NoError(t, repo.RecordFinishedGame(g))
	assert.True(t, g.StatsCounted)
	require.NoError(t, repo.RecordFinishedGame(g))

	p, err := repo.GetPlayerByName("erin")
	require.NoError(t, err)
	assert.Equal(t, 1, p.GamesPlayed)
	assert.Equal(t, 200, p.BestScore)
	assert.Equal(t, 200, p.TotalScore)
	assert.Equal(t, 4, p.TotalLines)

	stored, err := repo.GetGameByCode("DONE0001")
	require.NoError(t, err)
	assert.True(t, stored.StatsCounted)

	second := newGame("DONE0002", "erin", time.Now())
	require.NoError(t, repo.CreateGame(second))
	second.Status = game.StatusFinished
	second.Score = 50
	require.NoError(t, repo.RecordFinishedGame(second))

	p, err = repo.GetPlayerByName("ERIN")
	require.NoError(t, err)
	assert.Equal(t, 2, p.GamesPlayed)
	assert.Equal(t, 200, p.BestScore)
	assert.Equal(t, 250, p.TotalScore)
}

func TestGetTopPlayers(t *testing.T) {
	repo := newTestRepo(t)
	scores := map[string]int{"fay": 100, "gus": 300, "hal": 200}
	i := 0
	for name, score := range scores {
		g := newGame(fmt.Sprintf("TOPS000%d", i), name, time.Now())
		require.NoError(t, repo.CreateGame(g))
		g.Score = score
		require.NoError(t, repo.RecordFinishedGame(g))
		i++
	}

	top, err := repo.GetTopPlayers(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "gus", top[0].Name)
	assert.Equal(t, "hal", top[1].Name)

	_, err = repo.GetPlayerByName("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
