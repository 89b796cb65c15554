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

type ProfileDB struct {
	UserID       sql.NullString `db:"user_id"`
	JournalEntry sql.NullString `db:"journal_entry"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *profileRepository) GetProfile(c context.Context, userID string) (entity.Profile, error) {
	requestID := contextPkg.GetRequestID(c)
	var profile ProfileDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetProfile, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProfile named query preparation err")
		return entity.Profile{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Profile{}, err
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProfile execution err")
		return entity.Profile{}, err
	}

	return entity.Profile{
		UserID:       profile.UserID.String,
		JournalEntry: profile.JournalEntry.String,
		UpdatedAt:    profile.UpdatedAt,
	}, nil
}

func (r *profileRepository) UpsertJournalEntry(c context.Context, profile entity.Profile) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":       profile.UserID,
		"journal_entry": profile.JournalEntry,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertJournalEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertJournalEntry named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when upserting journal entry")
		return err
	}

	return nil
}
