package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

func TestRequestService(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newClinic(t)

	submit := func(first string, at time.Time) entities.AppointmentRequest {
		clinic.Requests.SetClock(fixedClock(at))
		r, err := clinic.Requests.Create(ctx, entities.AppointmentRequest{
			FirstName:     first,
			LastName:      "Kaya",
			Phone:         "0533 111 2233",
			PreferredDate: "2024-06-14",
			PreferredTime: "10:00",
			Status:        entities.RequestStatusApproved,
		})
		require.NoError(t, err)
		return r
	}

	oldest := submit("Elif", wednesday)
	middle := submit("Can", wednesday.Add(time.Hour))
	newest := submit("Deniz", wednesday.Add(2*time.Hour))

	t.Run("create forces pending", func(t *testing.T) {
		assert.Equal(t, entities.RequestStatusPending, oldest.Status)
	})

	t.Run("list is newest first", func(t *testing.T) {
		list, err := clinic.Requests.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("approve and reject", func(t *testing.T) {
		approved, found, err := clinic.Requests.Approve(ctx, oldest.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, entities.RequestStatusApproved, approved.Status)

		_, found, err = clinic.Requests.Reject(ctx, middle.ID)
		require.NoError(t, err)
		require.True(t, found)

		_, found, err = clinic.Requests.Approve(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("counts and status filter", func(t *testing.T) {
		counts, err := clinic.Requests.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.RequestCounts{Pending: 1, Approved: 1, Rejected: 1}, counts)

		pending, err := clinic.Requests.List(ctx, entities.RequestStatusPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, newest.ID, pending[0].ID)
	})

	t.Run("approval creates no appointment", func(t *testing.T) {
		appointments, err := clinic.Appointments.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, appointments)
	})
}
