package coachingRepository

const (
	queryCreateHabit = `
		INSERT INTO habits (
			id,
			user_id,
			name,
			is_active,
			current_streak,
			last_completed_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:is_active,
			:current_streak,
			:last_completed_date,
			:created_at,
			:updated_at
		)
	`

	queryGetHabitByID = `
		SELECT
			id,
			user_id,
			name,
			is_active,
			current_streak,
			last_completed_date,
			created_at,
			updated_at
		FROM habits
		WHERE id = :id
	`

	queryGetHabitsByUserID = `
		SELECT
			id,
			user_id,
			name,
			is_active,
			current_streak,
			last_completed_date,
			created_at,
			updated_at
		FROM habits
		WHERE user_id = :user_id
		ORDER BY created_at ASC
	`

	queryUpdateHabitCompletion = `
		UPDATE habits
		SET
			current_streak = :current_streak,
			last_completed_date = :last_completed_date,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryGetMoodEntriesSince = `
		SELECT
			id,
			user_id,
			mood_emoji,
			created_at
		FROM mood_entries
		WHERE
			user_id = :user_id
			AND created_at >= :since
		ORDER BY created_at ASC
	`
)
