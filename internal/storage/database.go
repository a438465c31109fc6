package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at dataSourceName, creating its
// directory when needed, and brings the schema up to date.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); !isMemory(dataSourceName) && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Keep schema updated via AutoMigrate; delete the DB file to start over.
	if err := db.AutoMigrate(&game.Game{}, &game.Player{}); err != nil {
		return nil, err
	}
	logging.Debug("database ready", logging.Fields{"dsn": dataSourceName})
	return db, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
