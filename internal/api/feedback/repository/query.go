package feedbackRepository

const (
	queryCreateFeedback = `
		INSERT INTO break_feedback (
			id,
			user_id,
			interaction_id,
			ai_message,
			rating,
			comment,
			feedback_type,
			created_at
		) VALUES (
			:id,
			:user_id,
			:interaction_id,
			:ai_message,
			:rating,
			:comment,
			:feedback_type,
			:created_at
		)
	`
)
