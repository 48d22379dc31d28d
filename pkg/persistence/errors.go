package persistence

import "errors"

var (
	// ErrWorkflowNotFound is returned when a workflow does not exist.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrFollowUpNotFound is returned when a follow-up does not exist.
	ErrFollowUpNotFound = errors.New("follow-up not found")
)

// IsWorkflowNotFound reports whether err wraps ErrWorkflowNotFound.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}

// IsSessionNotFound reports whether err wraps ErrSessionNotFound.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// IsMemberNotFound reports whether err wraps ErrMemberNotFound.
func IsMemberNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}

// IsFollowUpNotFound reports whether err wraps ErrFollowUpNotFound.
func IsFollowUpNotFound(err error) bool {
	return errors.Is(err, ErrFollowUpNotFound)
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return IsWorkflowNotFound(err) || IsSessionNotFound(err) ||
		IsMemberNotFound(err) || IsFollowUpNotFound(err)
}
