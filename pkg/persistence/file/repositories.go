package file

import (
	"context"
	"sort"

	"github.com/flockhq/flock/pkg/models"
)

// WorkflowRepository stores workflows as JSON documents.
type WorkflowRepository struct {
	store *store
}

func (r *WorkflowRepository) All(_ context.Context) ([]*models.Workflow, error) {
	ids, err := r.store.ids()
	if err != nil {
		return nil, err
	}

	workflows := make([]*models.Workflow, 0, len(ids))

	for _, id := range ids {
		var workflow models.Workflow
		if err := r.store.load(id, &workflow); err != nil {
			return nil, err
		}

		workflows = append(workflows, &workflow)
	}

	sort.Slice(workflows, func(i, j int) bool {
		return workflows[i].CreatedAt.Before(workflows[j].CreatedAt)
	})

	return workflows, nil
}

func (r *WorkflowRepository) GetByID(_ context.Context, id string) (*models.Workflow, error) {
	var workflow models.Workflow
	if err := r.store.load(id, &workflow); err != nil {
		return nil, err
	}

	return &workflow, nil
}

func (r *WorkflowRepository) Save(_ context.Context, workflow *models.Workflow) error {
	return r.store.save(workflow.ID, workflow)
}

func (r *WorkflowRepository) Delete(_ context.Context, id string) error {
	return r.store.delete(id)
}

// SessionRepository stores sessions as JSON documents.
type SessionRepository struct {
	store *store
}

func (r *SessionRepository) All(_ context.Context) ([]*models.Session, error) {
	ids, err := r.store.ids()
	if err != nil {
		return nil, err
	}

	sessions := make([]*models.Session, 0, len(ids))

	for _, id := range ids {
		var session models.Session
		if err := r.store.load(id, &session); err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartsAt.UTCTime < sessions[j].StartsAt.UTCTime
	})

	return sessions, nil
}

func (r *SessionRepository) GetByID(_ context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := r.store.load(id, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *SessionRepository) Save(_ context.Context, session *models.Session) error {
	return r.store.save(session.ID, session)
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	return r.store.delete(id)
}

// AttendanceRepository stores one document per session holding every
// record for that session.
type AttendanceRepository struct {
	store *store
}

func (r *AttendanceRepository) BySession(_ context.Context, sessionID string) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	err := r.store.load(sessionID, &records)
	if err != nil {
		// No document yet means no attendance marked.
		return []*models.AttendanceRecord{}, nil
	}

	return records, nil
}

func (r *AttendanceRepository) Save(ctx context.Context, record *models.AttendanceRecord) error {
	records, err := r.BySession(ctx, record.SessionID)
	if err != nil {
		return err
	}

	replaced := false

	for i, existing := range records {
		if existing.MemberID == record.MemberID {
			records[i] = record
			replaced = true

			break
		}
	}

	if !replaced {
		records = append(records, record)
	}

	return r.store.save(record.SessionID, records)
}

// MemberRepository stores members as JSON documents.
type MemberRepository struct {
	store *store
}

func (r *MemberRepository) All(_ context.Context) ([]*models.Member, error) {
	ids, err := r.store.ids()
	if err != nil {
		return nil, err
	}

	members := make([]*models.Member, 0, len(ids))

	for _, id := range ids {
		var member models.Member
		if err := r.store.load(id, &member); err != nil {
			return nil, err
		}

		members = append(members, &member)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].LastName < members[j].LastName
	})

	return members, nil
}

func (r *MemberRepository) GetByID(_ context.Context, id string) (*models.Member, error) {
	var member models.Member
	if err := r.store.load(id, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) Save(_ context.Context, member *models.Member) error {
	return r.store.save(member.ID, member)
}

func (r *MemberRepository) Delete(_ context.Context, id string) error {
	return r.store.delete(id)
}

// FollowUpRepository stores follow-ups as JSON documents.
type FollowUpRepository struct {
	store *store
}

func (r *FollowUpRepository) All(_ context.Context) ([]*models.FollowUp, error) {
	ids, err := r.store.ids()
	if err != nil {
		return nil, err
	}

	followUps := make([]*models.FollowUp, 0, len(ids))

	for _, id := range ids {
		var followUp models.FollowUp
		if err := r.store.load(id, &followUp); err != nil {
			return nil, err
		}

		followUps = append(followUps, &followUp)
	}

	sort.Slice(followUps, func(i, j int) bool {
		return followUps[i].CreatedAt.Before(followUps[j].CreatedAt)
	})

	return followUps, nil
}

func (r *FollowUpRepository) GetByID(_ context.Context, id string) (*models.FollowUp, error) {
	var followUp models.FollowUp
	if err := r.store.load(id, &followUp); err != nil {
		return nil, err
	}

	return &followUp, nil
}

func (r *FollowUpRepository) Save(_ context.Context, followUp *models.FollowUp) error {
	return r.store.save(followUp.ID, followUp)
}

func (r *FollowUpRepository) Delete(_ context.Context, id string) error {
	return r.store.delete(id)
}
