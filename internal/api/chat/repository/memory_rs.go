package chatRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
)

type CompanionMemoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Content   sql.NullString `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *memoryRepository) CreateMemory(c context.Context, memory entity.CompanionMemory) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         memory.ID,
		"user_id":    memory.UserID,
		"content":    memory.Content,
		"created_at": memory.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMemory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMemory named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating companion memory")
		return err
	}

	return nil
}

// GetRecentMemories returns the newest memories first; the caller reverses
// them when building prompt context.
func (r *memoryRepository) GetRecentMemories(c context.Context, userID string, limit int) ([]entity.CompanionMemory, error) {
	requestID := contextPkg.GetRequestID(c)
	var memories []CompanionMemoryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetRecentMemories, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentMemories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &memories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentMemories execution err")
		return nil, err
	}

	result := make([]entity.CompanionMemory, 0, len(memories))
	for _, memory := range memories {
		result = append(result, entity.CompanionMemory{
			ID:        memory.ID.String,
			UserID:    memory.UserID.String,
			Content:   memory.Content.String,
			CreatedAt: memory.CreatedAt,
		})
	}

	return result, nil
}
