package coachingRepository

import (
	"time"

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
		Habit:    &habitRepository{q: sqlExecutor, log: r.log},
		Mood:     &moodReadRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Habit interface {
		CreateHabit(c context.Context, habit entity.Habit) error
		GetHabitByID(c context.Context, id string) (entity.Habit, error)
		GetHabitsByUserID(c context.Context, userID string) ([]entity.Habit, error)
		UpdateHabitCompletion(c context.Context, habit entity.Habit) error
	}

	Mood interface {
		GetMoodEntriesSince(c context.Context, userID string, since time.Time) ([]entity.MoodEntry, error)
	}

	Commit   func() error
	Rollback func() error
}

type habitRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type moodReadRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
