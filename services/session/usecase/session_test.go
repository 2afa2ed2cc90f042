package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/database"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
	parcelmocks "github.com/piresc/titipkan/services/parcels/mocks"
	tripmocks "github.com/piresc/titipkan/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) (*Manager, *parcelmocks.MockParcelUC, *tripmocks.MockTripUC, *miniredis.Miniredis) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := database.NewRedisClientFromExisting(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	mockParcelUC := parcelmocks.NewMockParcelUC(ctrl)
	mockTripUC := tripmocks.NewMockTripUC(ctrl)

	mgr := NewManager(&models.Config{}, mockParcelUC, mockTripUC, redisClient)
	return mgr, mockParcelUC, mockTripUC, mr
}

func TestAttach_LoadsSenderCollections(t *testing.T) {
	mgr, mockParcelUC, mockTripUC, _ := setupManager(t)

	user := &models.User{ID: uuid.New(), Role: models.RoleSender}
	parcels := []*models.Parcel{{ID: uuid.New(), SenderID: user.ID}}
	trips := []*models.Trip{{ID: uuid.New()}}

	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(parcels, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(trips, nil)

	err := mgr.Attach(context.Background(), user)
	require.NoError(t, err)

	snap, err := mgr.Snapshot(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, parcels, snap.Parcels)
	assert.Equal(t, trips, snap.Trips)
	assert.False(t, snap.IsLoading)
	assert.Contains(t, snap.Capabilities, "create_parcel")
}

func TestSnapshot_UnknownUserGetsGuestView(t *testing.T) {
	mgr, _, _, _ := setupManager(t)

	snap, err := mgr.Snapshot(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Nil(t, snap.User)
	assert.Equal(t, models.RoleGuest, snap.Role)
	assert.Equal(t, []string{"track"}, snap.Capabilities)
}

func TestSwitchRole_RescopesCollections(t *testing.T) {
	mgr, mockParcelUC, mockTripUC, _ := setupManager(t)

	user := &models.User{ID: uuid.New(), Role: models.RoleSender}

	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(nil, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)
	require.NoError(t, mgr.Attach(context.Background(), user))

	ownTrips := []*models.Trip{{ID: uuid.New(), TransporterID: user.ID}}
	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleTransporter, user.ID).Return(nil, nil)
	mockTripUC.EXPECT().FetchTripsByTransporter(gomock.Any(), user.ID).Return(ownTrips, nil)

	err := mgr.SwitchRole(context.Background(), user.ID.String(), models.RoleTransporter)
	require.NoError(t, err)

	snap, err := mgr.Snapshot(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RoleTransporter, snap.Role)
	assert.Equal(t, ownTrips, snap.Trips)
	assert.Contains(t, snap.Capabilities, "accept_parcel")
}

func TestAddParcel_NonSenderRejected(t *testing.T) {
	mgr, _, _, _ := setupManager(t)

	result, err := mgr.AddParcel(context.Background(),
		models.Actor{ID: uuid.New(), Role: models.RoleTransporter},
		&models.ParcelDraft{})

	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
	assert.Nil(t, result)
}

func TestAddParcel_CommitsAndRefreshes(t *testing.T) {
	mgr, mockParcelUC, mockTripUC, _ := setupManager(t)

	user := &models.User{ID: uuid.New(), Role: models.RoleSender}

	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(nil, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)
	require.NoError(t, mgr.Attach(context.Background(), user))

	draft := &models.ParcelDraft{Title: "Dokumen penting"}
	created := &models.Parcel{ID: uuid.New(), SenderID: user.ID, Status: models.ParcelStatusPending}

	mockParcelUC.EXPECT().CreateParcel(gomock.Any(), user.ID, draft).Return(created, nil)
	// The reconciling refresh replaces the optimistic prepend.
	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return([]*models.Parcel{created}, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)

	result, err := mgr.AddParcel(context.Background(), models.Actor{ID: user.ID, Role: models.RoleSender}, draft)
	require.NoError(t, err)
	assert.Equal(t, created, result)

	snap, err := mgr.Snapshot(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []*models.Parcel{created}, snap.Parcels)
}

func TestMarkStale_WithoutContextSetsMarker(t *testing.T) {
	mgr, _, _, mr := setupManager(t)

	userID := uuid.New().String()
	err := mgr.MarkStale(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeySessionStale, userID)))
}

func TestSnapshot_StaleMarkerTriggersRefresh(t *testing.T) {
	mgr, mockParcelUC, mockTripUC, mr := setupManager(t)

	user := &models.User{ID: uuid.New(), Role: models.RoleSender}

	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(nil, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)
	require.NoError(t, mgr.Attach(context.Background(), user))

	staleKey := fmt.Sprintf(constants.KeySessionStale, user.ID.String())
	require.NoError(t, mr.Set(staleKey, "1"))

	fresh := []*models.Parcel{{ID: uuid.New(), SenderID: user.ID, Status: models.ParcelStatusMatched}}
	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(fresh, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)

	snap, err := mgr.Snapshot(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, fresh, snap.Parcels)
	assert.False(t, mr.Exists(staleKey), "refresh should consume the marker")
}

func TestTeardown_DiscardsContext(t *testing.T) {
	mgr, mockParcelUC, mockTripUC, _ := setupManager(t)

	user := &models.User{ID: uuid.New(), Role: models.RoleSender}

	mockParcelUC.EXPECT().FetchParcels(gomock.Any(), models.RoleSender, user.ID).Return(nil, nil)
	mockTripUC.EXPECT().FetchTrips(gomock.Any()).Return(nil, nil)
	require.NoError(t, mgr.Attach(context.Background(), user))

	mgr.Teardown(user.ID.String())

	snap, err := mgr.Snapshot(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, snap.Role)
}
