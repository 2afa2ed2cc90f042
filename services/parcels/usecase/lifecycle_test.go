package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	testCases := []struct {
		name     string
		current  models.ParcelStatus
		expected models.ParcelStatus
		ok       bool
	}{
		{name: "Matched advances to picked up", current: models.ParcelStatusMatched, expected: models.ParcelStatusPickedUp, ok: true},
		{name: "Picked up advances to in transit", current: models.ParcelStatusPickedUp, expected: models.ParcelStatusInTransit, ok: true},
		{name: "In transit advances to delivered", current: models.ParcelStatusInTransit, expected: models.ParcelStatusDelivered, ok: true},
		{name: "Delivered advances to confirmed", current: models.ParcelStatusDelivered, expected: models.ParcelStatusConfirmed, ok: true},
		{name: "Pending has no advance", current: models.ParcelStatusPending, ok: false},
		{name: "Confirmed is terminal", current: models.ParcelStatusConfirmed, ok: false},
		{name: "Unknown status has no advance", current: models.ParcelStatus("LOST"), ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextStatus(tc.current)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, next)
			}
		})
	}
}

func TestCanAdvance(t *testing.T) {
	senderID := uuid.New()
	transporterID := uuid.New()
	otherID := uuid.New()

	parcelAt := func(status models.ParcelStatus) *models.Parcel {
		return &models.Parcel{
			ID:            uuid.New(),
			SenderID:      senderID,
			TransporterID: &transporterID,
			Status:        status,
		}
	}

	uc := &ParcelUC{cfg: &models.Config{}}

	t.Run("assigned transporter advances carriage statuses", func(t *testing.T) {
		actor := models.Actor{ID: transporterID, Role: models.RoleTransporter}
		for _, status := range []models.ParcelStatus{
			models.ParcelStatusMatched,
			models.ParcelStatusPickedUp,
			models.ParcelStatusInTransit,
		} {
			assert.True(t, uc.CanAdvance(parcelAt(status), actor), "status %s", status)
		}
	})

	t.Run("a different transporter can never advance", func(t *testing.T) {
		actor := models.Actor{ID: otherID, Role: models.RoleTransporter}
		for _, status := range []models.ParcelStatus{
			models.ParcelStatusMatched,
			models.ParcelStatusPickedUp,
			models.ParcelStatusInTransit,
			models.ParcelStatusDelivered,
		} {
			assert.False(t, uc.CanAdvance(parcelAt(status), actor), "status %s", status)
		}
	})

	t.Run("receiver confirms delivered parcels", func(t *testing.T) {
		actor := models.Actor{ID: otherID, Role: models.RoleReceiver}
		assert.True(t, uc.CanAdvance(parcelAt(models.ParcelStatusDelivered), actor))
		assert.False(t, uc.CanAdvance(parcelAt(models.ParcelStatusInTransit), actor))
	})

	t.Run("owning sender confirms, other senders do not", func(t *testing.T) {
		owner := models.Actor{ID: senderID, Role: models.RoleSender}
		stranger := models.Actor{ID: otherID, Role: models.RoleSender}
		assert.True(t, uc.CanAdvance(parcelAt(models.ParcelStatusDelivered), owner))
		assert.False(t, uc.CanAdvance(parcelAt(models.ParcelStatusDelivered), stranger))
	})

	t.Run("transporter cannot confirm their own delivery", func(t *testing.T) {
		actor := models.Actor{ID: transporterID, Role: models.RoleTransporter}
		assert.False(t, uc.CanAdvance(parcelAt(models.ParcelStatusDelivered), actor))
	})

	t.Run("terminal and pending statuses never advance", func(t *testing.T) {
		for _, actor := range []models.Actor{
			{ID: senderID, Role: models.RoleSender},
			{ID: transporterID, Role: models.RoleTransporter},
			{ID: otherID, Role: models.RoleReceiver},
		} {
			assert.False(t, uc.CanAdvance(parcelAt(models.ParcelStatusPending), actor))
			assert.False(t, uc.CanAdvance(parcelAt(models.ParcelStatusConfirmed), actor))
		}
	})
}
