package coachingRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/api/coaching"
	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
)

type HabitDB struct {
	ID                sql.NullString `db:"id"`
	UserID            sql.NullString `db:"user_id"`
	Name              sql.NullString `db:"name"`
	IsActive          sql.NullBool   `db:"is_active"`
	CurrentStreak     sql.NullInt64  `db:"current_streak"`
	LastCompletedDate sql.NullTime   `db:"last_completed_date"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r *habitRepository) CreateHabit(c context.Context, habit entity.Habit) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                  habit.ID,
		"user_id":             habit.UserID,
		"name":                habit.Name,
		"is_active":           habit.IsActive,
		"current_streak":      habit.CurrentStreak,
		"last_completed_date": habit.LastCompletedDate,
		"created_at":          time.Now(),
		"updated_at":          time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateHabit, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateHabit named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating habit")
		return err
	}

	return nil
}

func (r *habitRepository) GetHabitByID(c context.Context, id string) (entity.Habit, error) {
	requestID := contextPkg.GetRequestID(c)
	var habit HabitDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetHabitByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitByID named query preparation err")
		return entity.Habit{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&habit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"habit_id":   id,
			}).Warn("GetHabitByID no rows found")
			return entity.Habit{}, coaching.ErrHabitNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitByID execution err")
		return entity.Habit{}, err
	}

	return r.makeHabit(habit), nil
}

func (r *habitRepository) GetHabitsByUserID(c context.Context, userID string) ([]entity.Habit, error) {
	requestID := contextPkg.GetRequestID(c)
	var habits []HabitDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetHabitsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &habits, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Habit, 0, len(habits))
	for _, habit := range habits {
		result = append(result, r.makeHabit(habit))
	}

	return result, nil
}

func (r *habitRepository) UpdateHabitCompletion(c context.Context, habit entity.Habit) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                  habit.ID,
		"current_streak":      habit.CurrentStreak,
		"last_completed_date": habit.LastCompletedDate,
		"updated_at":          time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateHabitCompletion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabitCompletion named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabitCompletion execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabitCompletion rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateHabitCompletion no rows affected")
		return coaching.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) makeHabit(habit HabitDB) entity.Habit {
	result := entity.Habit{
		ID:            habit.ID.String,
		UserID:        habit.UserID.String,
		Name:          habit.Name.String,
		IsActive:      habit.IsActive.Bool,
		CurrentStreak: int(habit.CurrentStreak.Int64),
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
	}

	if habit.LastCompletedDate.Valid {
		completedAt := habit.LastCompletedDate.Time
		result.LastCompletedDate = &completedAt
	}

	return result
}
