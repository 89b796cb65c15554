package feedbackRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
)

func (r *feedbackRepository) CreateFeedback(c context.Context, feedback entity.BreakFeedback) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             feedback.ID,
		"user_id":        feedback.UserID,
		"interaction_id": feedback.InteractionID,
		"ai_message":     feedback.AIMessage,
		"rating":         feedback.Rating,
		"comment":        feedback.Comment,
		"feedback_type":  feedback.FeedbackType,
		"created_at":     feedback.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateFeedback named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating feedback")
		return err
	}

	return nil
}
