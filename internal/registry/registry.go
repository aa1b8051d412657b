// Package registry implements the in-memory activity store.
//
// The registry is constructed once at process start from a seed catalog and
// its membership never changes afterwards; only the per-activity rosters
// mutate. A single RWMutex serializes mutations so the check-then-append in
// Enroll cannot race another writer on the same roster.
package registry

import (
	"context"
	"fmt"
	"sync"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// Registry is the process-wide activity store.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New builds a Registry from the catalog. The catalog must be non-empty and
// every seeded roster must be duplicate-free.
func New(catalog map[string]domain.Activity) (*Registry, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("registry: catalog is empty")
	}

	activities := make(map[string]*domain.Activity, len(catalog))
	for name, activity := range catalog {
		seen := make(map[string]struct{}, len(activity.Participants))
		for _, email := range activity.Participants {
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("registry: duplicate participant %q in activity %q", email, name)
			}
			seen[email] = struct{}{}
		}

		copied := activity
		copied.Name = name
		copied.Participants = append([]string(nil), activity.Participants...)
		activities[name] = &copied

		observability.SetRosterSize(name, len(copied.Participants))
	}

	return &Registry{activities: activities}, nil
}

// List returns a deep-copied snapshot of every activity keyed by name.
func (r *Registry) List(_ context.Context) map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		copied := *activity
		copied.Participants = append([]string(nil), activity.Participants...)
		out[name] = copied
	}
	return out
}

// Enroll adds email to the named activity's roster. It fails with
// domain.ErrActivityNotFound for unknown activities and
// domain.ErrAlreadySignedUp for duplicate signups; on failure no state
// changes.
func (r *Registry) Enroll(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		observability.RecordRejection(observability.ReasonNotFound)
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		observability.RecordRejection(observability.ReasonDuplicate)
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	observability.RecordSignup(activityName, len(activity.Participants))
	return nil
}

// Withdraw removes email from the named activity's roster. It fails with
// domain.ErrActivityNotFound for unknown activities and domain.ErrNotSignedUp
// when the email is absent; on failure no state changes.
func (r *Registry) Withdraw(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		observability.RecordRejection(observability.ReasonNotFound)
		return domain.ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			observability.RecordWithdrawal(activityName, len(activity.Participants))
			return nil
		}
	}

	observability.RecordRejection(observability.ReasonNotSignedUp)
	return domain.ErrNotSignedUp
}
