package chatRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
)

type MoodEntryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	MoodEmoji sql.NullString `db:"mood_emoji"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *moodRepository) CreateMoodEntry(c context.Context, mood entity.MoodEntry) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         mood.ID,
		"user_id":    mood.UserID,
		"mood_emoji": mood.MoodEmoji,
		"created_at": mood.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMoodEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMoodEntry named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating mood entry")
		return err
	}

	return nil
}

// GetLatestMoodEntry returns sql.ErrNoRows unchanged so the caller can
// distinguish "no moods yet" from a real database failure.
func (r *moodRepository) GetLatestMoodEntry(c context.Context, userID string) (entity.MoodEntry, error) {
	requestID := contextPkg.GetRequestID(c)
	var mood MoodEntryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetLatestMoodEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestMoodEntry named query preparation err")
		return entity.MoodEntry{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&mood); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.MoodEntry{}, err
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestMoodEntry execution err")
		return entity.MoodEntry{}, err
	}

	return r.makeMoodEntry(mood), nil
}

func (r *moodRepository) makeMoodEntry(mood MoodEntryDB) entity.MoodEntry {
	return entity.MoodEntry{
		ID:        mood.ID.String,
		UserID:    mood.UserID.String,
		MoodEmoji: mood.MoodEmoji.String,
		CreatedAt: mood.CreatedAt,
	}
}
