// Package file provides file-based persistence: one JSON document per
// entity under a root directory. It is the default backend for local
// development and tests.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flockhq/flock/pkg/persistence"
)

// Persistence implements persistence.Persistence on the file system.
type Persistence struct {
	root        string
	workflows   *WorkflowRepository
	sessions    *SessionRepository
	attendance  *AttendanceRepository
	members     *MemberRepository
	followUps   *FollowUpRepository
}

// NewPersistence creates a file persistence rooted at the given
// directory. A "file://" prefix is stripped for URL-style configs.
func NewPersistence(root string) *Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{
		root:       cleanRoot,
		workflows:  &WorkflowRepository{store: newStore(cleanRoot, "workflows", persistence.ErrWorkflowNotFound)},
		sessions:   &SessionRepository{store: newStore(cleanRoot, "sessions", persistence.ErrSessionNotFound)},
		attendance: &AttendanceRepository{store: newStore(cleanRoot, "attendance", nil)},
		members:    &MemberRepository{store: newStore(cleanRoot, "members", persistence.ErrMemberNotFound)},
		followUps:  &FollowUpRepository{store: newStore(cleanRoot, "followups", persistence.ErrFollowUpNotFound)},
	}
}

// Close is a no-op for file persistence.
func (p *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the root directory exists.
func (p *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(p.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

func (p *Persistence) WorkflowRepository() persistence.WorkflowRepository {
	return p.workflows
}

func (p *Persistence) SessionRepository() persistence.SessionRepository {
	return p.sessions
}

func (p *Persistence) AttendanceRepository() persistence.AttendanceRepository {
	return p.attendance
}

func (p *Persistence) MemberRepository() persistence.MemberRepository {
	return p.members
}

func (p *Persistence) FollowUpRepository() persistence.FollowUpRepository {
	return p.followUps
}

// store reads and writes one JSON file per entity in a subdirectory.
type store struct {
	dir      string
	notFound error
}

func newStore(root, name string, notFound error) *store {
	return &store{dir: filepath.Join(root, name), notFound: notFound}
}

func (s *store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *store) save(id string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", s.dir, err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", id, err)
	}

	if err := os.WriteFile(s.path(id), payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path(id), err)
	}

	return nil
}

func (s *store) load(id string, v any) error {
	payload, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && s.notFound != nil {
			return s.notFound
		}

		return fmt.Errorf("failed to read %s: %w", s.path(id), err)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.path(id), err)
	}

	return nil
}

func (s *store) delete(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) && s.notFound != nil {
		return s.notFound
	}

	return err
}

func (s *store) ids() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	ids := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}

	return ids, nil
}
