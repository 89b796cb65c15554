package coachingRepository

import (
	"context"
	"database/sql"
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

func (r *moodReadRepository) GetMoodEntriesSince(c context.Context, userID string, since time.Time) ([]entity.MoodEntry, error) {
	requestID := contextPkg.GetRequestID(c)
	var moods []MoodEntryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"since":   since,
	}

	query, args, err := sqlx.Named(queryGetMoodEntriesSince, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMoodEntriesSince named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &moods, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMoodEntriesSince execution err")
		return nil, err
	}

	result := make([]entity.MoodEntry, 0, len(moods))
	for _, mood := range moods {
		result = append(result, entity.MoodEntry{
			ID:        mood.ID.String,
			UserID:    mood.UserID.String,
			MoodEmoji: mood.MoodEmoji.String,
			CreatedAt: mood.CreatedAt,
		})
	}

	return result, nil
}
