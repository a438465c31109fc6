package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/game"
	"gorm.io/gorm"
)

const defaultListLimit = 10

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *sqliteRepository) CreateGame(g *game.Game) error {
	return r.db.Create(g).Error
}

func (r *sqliteRepository) GetGameByCode(code string) (*game.Game, error) {
	var g game.Game
	if err := r.db.Where("code = ?", code).First(&g).Error; err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

// UpdateGame writes the mutable columns of an in-progress game. The write
// only lands if the stored row is still in progress at the revision g was
// read at; otherwise game.ErrStaleGame is returned and nothing changes.
func (r *sqliteRepository) UpdateGame(g *game.Game) error {
	res := r.db.Model(&game.Game{}).
		Where("id = ? AND revision = ? AND status = ?", g.ID, g.Revision, game.StatusInProgress).
		Updates(map[string]interface{}{
			"status":        g.Status,
			"board":         g.Board,
			"hand":          g.Hand,
			"score":         g.Score,
			"lines_cleared": g.LinesCleared,
			"moves":         g.Moves,
			"last_activity": g.LastActivity,
			"message":       g.Message,
			"revision":      g.Revision + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return game.ErrStaleGame
	}
	g.Revision++
	return nil
}

func (r *sqliteRepository) ListRecentGames(limit int) ([]game.Game, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var games []game.Game
	if err := r.db.Order("last_activity desc").Limit(limit).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *sqliteRepository) FindIdleGames(before time.Time) ([]game.Game, error) {
	var games []game.Game
	if err := r.db.Where("status = ? AND last_activity <= ?", game.StatusInProgress, before).
		Order("last_activity asc").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

var errAlreadyCounted = errors.New("stats already counted")

func (r *sqliteRepository) RecordFinishedGame(g *game.Game) error {
	if g.StatsCounted {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Claim the game first so concurrent callers count it once.
		res := tx.Model(&game.Game{}).
			Where("id = ? AND stats_counted = ?", g.ID, false).
			Update("stats_counted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyCounted
		}

		var p game.Player
		if err := tx.Where("lower(name) = ?", strings.ToLower(g.PlayerName)).First(&p).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			p = game.Player{Name: g.PlayerName}
		}
		p.GamesPlayed++
		p.TotalScore += g.Score
		p.TotalLines += g.LinesCleared
		if g.Score > p.BestScore {
			p.BestScore = g.Score
		}
		return tx.Save(&p).Error
	})
	if err != nil && !errors.Is(err, errAlreadyCounted) {
		return err
	}
	g.StatsCounted = true
	return nil
}

func (r *sqliteRepository) GetPlayerByName(name string) (*game.Player, error) {
	var p game.Player
	if err := r.db.Where("lower(name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// GetTopPlayers returns top N players ordered by BestScore desc, then
// GamesPlayed asc so fewer attempts rank higher on ties.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.Player, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var players []game.Player
	if err := r.db.Model(&game.Player{}).
		Order("best_score DESC").
		Order("games_played ASC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
