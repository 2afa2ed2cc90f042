package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/match/mocks"
	"github.com/stretchr/testify/assert"
)

func setupMatchUC(t *testing.T) (*MatchUC, *mocks.MockMatchRepo, *mocks.MockMatchGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	cfg := &models.Config{
		Match: models.MatchConfig{SearchRadiusKm: 10},
	}
	return NewMatchUC(cfg, mockRepo, mockGW), mockRepo, mockGW
}

func TestDirectAccept_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupMatchUC(t)

	transporterID := uuid.New()
	parcelID := uuid.New()
	assigned := &models.Parcel{
		ID:            parcelID,
		SenderID:      uuid.New(),
		TransporterID: &transporterID,
		Status:        models.ParcelStatusMatched,
	}

	mockRepo.EXPECT().
		AssignTransporter(gomock.Any(), parcelID, transporterID, nil).
		Return(assigned, nil)
	mockRepo.EXPECT().RemovePendingParcel(gomock.Any(), parcelID.String()).Return(nil)
	mockGW.EXPECT().
		PublishParcelMatched(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.ParcelEvent) error {
			assert.Equal(t, models.ParcelStatusPending, event.FromStatus)
			assert.Equal(t, models.ParcelStatusMatched, event.Status)
			assert.Equal(t, transporterID.String(), event.TransporterID)
			return nil
		})

	result, err := uc.DirectAccept(context.Background(), parcelID, models.Actor{ID: transporterID, Role: models.RoleTransporter})

	assert.NoError(t, err)
	assert.Equal(t, assigned, result.Parcel)
	assert.Empty(t, result.CapacityWarning)
}

func TestDirectAccept_NonTransporterRejected(t *testing.T) {
	uc, _, _ := setupMatchUC(t)

	result, err := uc.DirectAccept(context.Background(), uuid.New(), models.Actor{ID: uuid.New(), Role: models.RoleSender})

	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
	assert.Nil(t, result)
}

func TestDirectAccept_LostRace(t *testing.T) {
	uc, mockRepo, _ := setupMatchUC(t)

	transporterID := uuid.New()
	parcelID := uuid.New()

	mockRepo.EXPECT().
		AssignTransporter(gomock.Any(), parcelID, transporterID, nil).
		Return(nil, pkgerrors.ErrAlreadyAssigned)

	result, err := uc.DirectAccept(context.Background(), parcelID, models.Actor{ID: transporterID, Role: models.RoleTransporter})

	assert.ErrorIs(t, err, pkgerrors.ErrAlreadyAssigned)
	assert.Nil(t, result)
}

func TestAssignFromTrip_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupMatchUC(t)

	senderID := uuid.New()
	transporterID := uuid.New()
	parcelID := uuid.New()
	tripID := uuid.New()

	pending := &models.Parcel{
		ID:       parcelID,
		SenderID: senderID,
		Size:     models.SizeSmall,
		Status:   models.ParcelStatusPending,
	}
	trip := &models.Trip{
		ID:            tripID,
		TransporterID: transporterID,
		Capacity:      models.SizeLarge,
	}
	assigned := &models.Parcel{
		ID:            parcelID,
		SenderID:      senderID,
		TransporterID: &transporterID,
		TripID:        &tripID,
		Size:          models.SizeSmall,
		Status:        models.ParcelStatusMatched,
	}

	mockRepo.EXPECT().GetParcel(gomock.Any(), parcelID).Return(pending, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	mockRepo.EXPECT().AssignTransporter(gomock.Any(), parcelID, transporterID, &tripID).Return(assigned, nil)
	mockRepo.EXPECT().RemovePendingParcel(gomock.Any(), parcelID.String()).Return(nil)
	mockGW.EXPECT().PublishParcelMatched(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.AssignFromTrip(context.Background(), parcelID, tripID, models.Actor{ID: senderID, Role: models.RoleSender})

	assert.NoError(t, err)
	assert.Equal(t, assigned, result.Parcel)
	assert.Empty(t, result.CapacityWarning)
}

func TestAssignFromTrip_CapacityMismatchIsAdvisory(t *testing.T) {
	uc, mockRepo, mockGW := setupMatchUC(t)

	senderID := uuid.New()
	transporterID := uuid.New()
	parcelID := uuid.New()
	tripID := uuid.New()

	pending := &models.Parcel{
		ID:       parcelID,
		SenderID: senderID,
		Size:     models.SizeXLarge,
		Status:   models.ParcelStatusPending,
	}
	trip := &models.Trip{
		ID:            tripID,
		TransporterID: transporterID,
		Capacity:      models.SizeSmall,
	}
	assigned := &models.Parcel{
		ID:            parcelID,
		SenderID:      senderID,
		TransporterID: &transporterID,
		TripID:        &tripID,
		Size:          models.SizeXLarge,
		Status:        models.ParcelStatusMatched,
	}

	mockRepo.EXPECT().GetParcel(gomock.Any(), parcelID).Return(pending, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	mockRepo.EXPECT().AssignTransporter(gomock.Any(), parcelID, transporterID, &tripID).Return(assigned, nil)
	mockRepo.EXPECT().RemovePendingParcel(gomock.Any(), parcelID.String()).Return(nil)
	mockGW.EXPECT().PublishParcelMatched(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.AssignFromTrip(context.Background(), parcelID, tripID, models.Actor{ID: senderID, Role: models.RoleSender})

	// The oversized parcel still matches; the mismatch is only surfaced.
	assert.NoError(t, err)
	assert.Contains(t, result.CapacityWarning, "exceeds trip capacity")
}

func TestAssignFromTrip_NotTheSender(t *testing.T) {
	uc, mockRepo, _ := setupMatchUC(t)

	parcelID := uuid.New()
	pending := &models.Parcel{
		ID:       parcelID,
		SenderID: uuid.New(),
		Status:   models.ParcelStatusPending,
	}

	mockRepo.EXPECT().GetParcel(gomock.Any(), parcelID).Return(pending, nil)

	result, err := uc.AssignFromTrip(context.Background(), parcelID, uuid.New(), models.Actor{ID: uuid.New(), Role: models.RoleSender})

	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
	assert.Nil(t, result)
}

func TestAssignFromTrip_NonSenderRejected(t *testing.T) {
	uc, _, _ := setupMatchUC(t)

	result, err := uc.AssignFromTrip(context.Background(), uuid.New(), uuid.New(), models.Actor{ID: uuid.New(), Role: models.RoleTransporter})

	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
	assert.Nil(t, result)
}

func TestAssignFromTrip_CompletedTripRejected(t *testing.T) {
	uc, mockRepo, _ := setupMatchUC(t)

	senderID := uuid.New()
	parcelID := uuid.New()
	tripID := uuid.New()

	pending := &models.Parcel{
		ID:       parcelID,
		SenderID: senderID,
		Size:     models.SizeSmall,
		Status:   models.ParcelStatusPending,
	}
	completed := &models.Trip{
		ID:            tripID,
		TransporterID: uuid.New(),
		Capacity:      models.SizeLarge,
		Status:        models.TripStatusCompleted,
	}

	mockRepo.EXPECT().GetParcel(gomock.Any(), parcelID).Return(pending, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(completed, nil)

	result, err := uc.AssignFromTrip(context.Background(), parcelID, tripID, models.Actor{ID: senderID, Role: models.RoleSender})

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
	assert.Nil(t, result)
}

func TestNearbyPending_UsesConfiguredRadius(t *testing.T) {
	uc, mockRepo, _ := setupMatchUC(t)

	transporterID := uuid.New()
	nearby := []*models.NearbyParcel{
		{Parcel: &models.Parcel{ID: uuid.New(), Status: models.ParcelStatusPending}, DistanceKm: 2.4},
	}

	mockRepo.EXPECT().
		FindNearbyPending(gomock.Any(), -6.2088, 106.8456, 10.0).
		Return(nearby, nil)

	result, err := uc.NearbyPending(context.Background(), models.Actor{ID: transporterID, Role: models.RoleTransporter}, -6.2088, 106.8456)

	assert.NoError(t, err)
	assert.Equal(t, nearby, result)
}

func TestNearbyPending_SenderRejected(t *testing.T) {
	uc, _, _ := setupMatchUC(t)

	result, err := uc.NearbyPending(context.Background(), models.Actor{ID: uuid.New(), Role: models.RoleSender}, 0, 0)

	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
	assert.Nil(t, result)
}

func TestTrackPendingParcel_SkipsNonPending(t *testing.T) {
	uc, mockRepo, _ := setupMatchUC(t)

	parcelID := uuid.New()
	matched := &models.Parcel{ID: parcelID, Status: models.ParcelStatusMatched}

	mockRepo.EXPECT().GetParcel(gomock.Any(), parcelID).Return(matched, nil)

	err := uc.TrackPendingParcel(context.Background(), models.ParcelEvent{ParcelID: parcelID.String()})

	assert.NoError(t, err)
}
