package postgresql

func migrations() map[int]string {
	return map[int]string{
		1: `
			-- Workflow definitions. Trigger and steps are stored as the
			-- same JSON documents the backend wire format uses.
			CREATE TABLE workflows (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				trigger JSONB,
				steps JSONB NOT NULL DEFAULT '[]',
				status VARCHAR(50) NOT NULL CHECK (status IN ('draft', 'active', 'paused', 'deleted')),
				enabled BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
				deleted_at TIMESTAMP WITH TIME ZONE
			);

			CREATE INDEX idx_workflows_status ON workflows(status);
			CREATE INDEX idx_workflows_created_at ON workflows(created_at);
			CREATE INDEX idx_workflows_deleted_at ON workflows(deleted_at);

			-- Sessions keep the scheduler's wall clock alongside the
			-- derived UTC instant, exactly as transported.
			CREATE TABLE sessions (
				id UUID PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				group_id VARCHAR(255),
				local_time VARCHAR(64) NOT NULL,
				timezone_offset_minutes INT NOT NULL,
				utc_time VARCHAR(64) NOT NULL,
				duration_minutes INT NOT NULL DEFAULT 0,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_sessions_group_id ON sessions(group_id);
			CREATE INDEX idx_sessions_utc_time ON sessions(utc_time);

			CREATE TABLE members (
				id UUID PRIMARY KEY,
				first_name VARCHAR(255) NOT NULL,
				last_name VARCHAR(255) NOT NULL DEFAULT '',
				email VARCHAR(255),
				phone VARCHAR(64),
				status VARCHAR(50) NOT NULL CHECK (status IN ('active', 'inactive', 'visitor')),
				joined_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_members_status ON members(status);
			CREATE INDEX idx_members_last_name ON members(last_name);

			CREATE TABLE attendance_records (
				id UUID PRIMARY KEY,
				session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
				member_id UUID NOT NULL,
				status VARCHAR(50) NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
				recorded_at TIMESTAMP WITH TIME ZONE NOT NULL,
				UNIQUE (session_id, member_id)
			);

			CREATE INDEX idx_attendance_records_session_id ON attendance_records(session_id);
			CREATE INDEX idx_attendance_records_member_id ON attendance_records(member_id);

			CREATE TABLE follow_ups (
				id UUID PRIMARY KEY,
				member_id UUID NOT NULL,
				assignee_id VARCHAR(255),
				reason TEXT NOT NULL,
				status VARCHAR(50) NOT NULL CHECK (status IN ('open', 'in_process', 'done')),
				due_date VARCHAR(64),
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_follow_ups_member_id ON follow_ups(member_id);
			CREATE INDEX idx_follow_ups_status ON follow_ups(status);
		`,
	}
}
