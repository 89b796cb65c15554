package chatRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Mood:     &moodRepository{q: sqlExecutor, log: r.log},
		Profile:  &profileRepository{q: sqlExecutor, log: r.log},
		Memory:   &memoryRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Mood interface {
		CreateMoodEntry(c context.Context, mood entity.MoodEntry) error
		GetLatestMoodEntry(c context.Context, userID string) (entity.MoodEntry, error)
	}

	Profile interface {
		GetProfile(c context.Context, userID string) (entity.Profile, error)
		UpsertJournalEntry(c context.Context, profile entity.Profile) error
	}

	Memory interface {
		CreateMemory(c context.Context, memory entity.CompanionMemory) error
		GetRecentMemories(c context.Context, userID string, limit int) ([]entity.CompanionMemory, error)
	}

	Commit   func() error
	Rollback func() error
}

type moodRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type profileRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type memoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
