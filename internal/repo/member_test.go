package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

func TestMemberRepo_Add(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewMemberRepo(tx)
	ctx := context.Background()

	trip, _ := createTestTrip(t, tx)
	invitee := createTestUser(t, tx)

	got, err := r.Add(ctx, domain.TripMember{
		TripID: trip.ID,
		UserID: invitee.ID,
		Role:   domain.RoleMember,
		Status: domain.MemberInvited,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, domain.MemberInvited, got.Status)
	assert.Nil(t, got.JoinedAt, "joined_at stays empty until the invite is accepted")
}

func TestMemberRepo_Add_Idempotent(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewMemberRepo(tx)
	ctx := context.Background()

	trip, _ := createTestTrip(t, tx)
	invitee := createTestUser(t, tx)
	member := domain.TripMember{
		TripID: trip.ID,
		UserID: invitee.ID,
		Role:   domain.RoleMember,
		Status: domain.MemberInvited,
	}

	first, err := r.Add(ctx, member)
	require.NoError(t, err)

	// Re-inviting the same user must return the existing row, not error on
	// the unique (trip_id, user_id) constraint.
	second, err := r.Add(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	members, err := r.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberRepo_UpdateStatus_AcceptStampsJoinedAt(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewMemberRepo(tx)
	ctx := context.Background()

	trip, _ := createTestTrip(t, tx)
	invitee := createTestUser(t, tx)
	_, err := r.Add(ctx, domain.TripMember{
		TripID: trip.ID,
		UserID: invitee.ID,
		Role:   domain.RoleMember,
		Status: domain.MemberInvited,
	})
	require.NoError(t, err)

	got, err := r.UpdateStatus(ctx, trip.ID, invitee.ID, domain.MemberAccepted)

	require.NoError(t, err)
	assert.Equal(t, domain.MemberAccepted, got.Status)
	require.NotNil(t, got.JoinedAt, "accepting must stamp joined_at")
	assert.False(t, got.JoinedAt.IsZero())
}

func TestMemberRepo_UpdateStatus_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewMemberRepo(tx)

	trip, _ := createTestTrip(t, tx)

	_, err := r.UpdateStatus(context.Background(), trip.ID, uuid.New(), domain.MemberDeclined)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemberRepo_Remove(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewMemberRepo(tx)
	ctx := context.Background()

	trip, _ := createTestTrip(t, tx)
	invitee := createTestUser(t, tx)
	_, err := r.Add(ctx, domain.TripMember{
		TripID: trip.ID,
		UserID: invitee.ID,
		Role:   domain.RoleMember,
		Status: domain.MemberInvited,
	})
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, trip.ID, invitee.ID))

	members, err := r.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}
