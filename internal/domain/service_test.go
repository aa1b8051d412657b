package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubStore struct {
	enrollErr   error
	withdrawErr error
	enrolls     int
	withdraws   int
}

func (s *stubStore) List(ctx context.Context) map[string]Activity {
	return map[string]Activity{
		"Chess Club": {Name: "Chess Club", Participants: []string{"michael@mergington.edu"}},
	}
}

func (s *stubStore) Enroll(ctx context.Context, activityName, email string) error {
	s.enrolls++
	return s.enrollErr
}

func (s *stubStore) Withdraw(ctx context.Context, activityName, email string) error {
	s.withdraws++
	return s.withdrawErr
}

func TestEnrollMessage(t *testing.T) {
	store := &stubStore{}
	service := NewService(store)

	msg, err := service.Enroll(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", msg)
	require.Equal(t, 1, store.enrolls)
}

func TestEnrollPropagatesStoreError(t *testing.T) {
	service := NewService(&stubStore{enrollErr: ErrAlreadySignedUp})

	msg, err := service.Enroll(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)
	require.Empty(t, msg)
}

func TestWithdrawMessage(t *testing.T) {
	store := &stubStore{}
	service := NewService(store)

	msg, err := service.Withdraw(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Unregistered michael@mergington.edu from Chess Club", msg)
	require.Equal(t, 1, store.withdraws)
}

func TestWithdrawPropagatesStoreError(t *testing.T) {
	service := NewService(&stubStore{withdrawErr: ErrNotSignedUp})

	_, err := service.Withdraw(context.Background(), "Chess Club", "notsignedup@mergington.edu")
	require.ErrorIs(t, err, ErrNotSignedUp)
}

func TestListActivitiesDelegatesToStore(t *testing.T) {
	service := NewService(&stubStore{})

	activities := service.ListActivities(context.Background())
	require.Contains(t, activities, "Chess Club")
	require.True(t, activities["Chess Club"].HasParticipant("michael@mergington.edu"))
}
