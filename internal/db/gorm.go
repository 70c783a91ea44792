package db

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		GormForkedModel
		Email     string `gorm:"unique;not null"`
		Password  string `gorm:"not null"`
		FirstName *string
		LastName  *string
		Bookmarks []Bookmark
	}

	Bookmark struct {
		GormForkedModel
		Title       string `gorm:"not null"`
		Link        string `gorm:"not null"`
		Description *string
		UserID      uint64 `gorm:"not null;index"`
		User        *User
	}
)

func NewGormClient(cfg *config.Config, l *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DSN()), l)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open connects through the given dialector with GORM logs routed to zap.
func Open(dialector gorm.Dialector, l *zap.SugaredLogger) (*gorm.DB, error) {
	gormLogger := logger.New(zap.NewStdLog(l.Desugar().Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
	})

	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return errors.Wrap(err, "migrate user")
	}
	if err := db.AutoMigrate(&Bookmark{}); err != nil {
		return errors.Wrap(err, "migrate bookmark")
	}
	return nil
}
