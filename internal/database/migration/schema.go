package migration

// All returns the full migration set in order.
func All() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_users",
			SQL: `
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					resume_url TEXT NOT NULL DEFAULT '',
					resume_uploaded BOOLEAN NOT NULL DEFAULT FALSE,
					parsed_resume JSONB,
					resume_parsed_at TIMESTAMPTZ,
					preferences JSONB NOT NULL DEFAULT '{}'::jsonb,
					manual_skills JSONB NOT NULL DEFAULT '[]'::jsonb,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
				)`,
		},
		{
			Version: 2,
			Name:    "create_saved_jobs",
			SQL: `
				CREATE TABLE IF NOT EXISTS saved_jobs (
					id UUID PRIMARY KEY,
					user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					job_id TEXT NOT NULL,
					title TEXT NOT NULL,
					company TEXT NOT NULL,
					location TEXT NOT NULL DEFAULT '',
					salary TEXT NOT NULL DEFAULT '',
					link TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					skills JSONB NOT NULL DEFAULT '[]'::jsonb,
					date_posted TEXT NOT NULL DEFAULT '',
					job_type TEXT NOT NULL DEFAULT '',
					match_score INT NOT NULL DEFAULT 0,
					saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					UNIQUE (user_id, job_id)
				)`,
		},
		{
			Version: 3,
			Name:    "index_saved_jobs_user",
			SQL:     `CREATE INDEX IF NOT EXISTS idx_saved_jobs_user_saved_at ON saved_jobs (user_id, saved_at DESC)`,
		},
	}
}
