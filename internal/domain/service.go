// Package domain defines the business logic for the activity signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the registry.
	ErrActivityNotFound = errors.New("Activity not found")
	// ErrAlreadySignedUp is returned when the student is already on the roster.
	ErrAlreadySignedUp = errors.New("Student already signed up for this activity")
	// ErrNotSignedUp is returned when the student is absent from the roster.
	ErrNotSignedUp = errors.New("Student is not signed up for this activity")
)

// ActivityStore captures the registry operations the service depends on.
type ActivityStore interface {
	List(ctx context.Context) map[string]Activity
	Enroll(ctx context.Context, activityName, email string) error
	Withdraw(ctx context.Context, activityName, email string) error
}

// Service orchestrates signup workflows over the activity registry.
type Service struct {
	store ActivityStore
}

// NewService constructs a Service.
func NewService(store ActivityStore) *Service {
	return &Service{store: store}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.store.List(ctx)
}

// Enroll adds email to the activity's roster and returns a confirmation message.
func (s *Service) Enroll(ctx context.Context, activityName, email string) (string, error) {
	if err := s.store.Enroll(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Withdraw removes email from the activity's roster and returns a confirmation message.
func (s *Service) Withdraw(ctx context.Context, activityName, email string) (string, error) {
	if err := s.store.Withdraw(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
