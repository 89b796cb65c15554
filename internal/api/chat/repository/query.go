package chatRepository

const (
	queryCreateMoodEntry = `
		INSERT INTO mood_entries (
			id,
			user_id,
			mood_emoji,
			created_at
		) VALUES (
			:id,
			:user_id,
			:mood_emoji,
			:created_at
		)
	`

	queryGetLatestMoodEntry = `
		SELECT
			id,
			user_id,
			mood_emoji,
			created_at
		FROM mood_entries
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryGetProfile = `
		SELECT
			user_id,
			journal_entry,
			updated_at
		FROM profiles
		WHERE user_id = :user_id
	`

	queryUpsertJournalEntry = `
		INSERT INTO profiles (
			user_id,
			journal_entry,
			updated_at
		) VALUES (
			:user_id,
			:journal_entry,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			journal_entry = EXCLUDED.journal_entry,
			updated_at = EXCLUDED.updated_at
	`

	queryCreateMemory = `
		INSERT INTO companion_memories (
			id,
			user_id,
			content,
			created_at
		) VALUES (
			:id,
			:user_id,
			:content,
			:created_at
		)
	`

	queryGetRecentMemories = `
		SELECT
			id,
			user_id,
			content,
			created_at
		FROM companion_memories
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit
	`
)
