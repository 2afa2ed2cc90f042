package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/parcels/mocks"
	"github.com/stretchr/testify/assert"
)

type fakeParcelCreator struct {
	created  *models.Parcel
	err      error
	gotActor models.Actor
}

func (f *fakeParcelCreator) AddParcel(ctx context.Context, actor models.Actor, draft *models.ParcelDraft) (*models.Parcel, error) {
	f.gotActor = actor
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID, role models.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c
}

func TestNewParcelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParcelUC := mocks.NewMockParcelUC(ctrl)
	sessions := &fakeParcelCreator{}
	handler := NewParcelHandler(mockParcelUC, sessions)

	assert.NotNil(t, handler)
	assert.Equal(t, mockParcelUC, handler.parcelUC)
}

func TestParcelHandler_CreateParcel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	created := &models.Parcel{ID: uuid.New(), SenderID: userID, Status: models.ParcelStatusPending}
	sessions := &fakeParcelCreator{created: created}
	handler := NewParcelHandler(mocks.NewMockParcelUC(ctrl), sessions)

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{
		"title": "Dokumen penting",
		"size":  "S",
		"price": 25000,
	})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := authedContext(e, request, recorder, userID, models.RoleSender)

	err := handler.CreateParcel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, userID, sessions.gotActor.ID)
	assert.Equal(t, models.RoleSender, sessions.gotActor.Role)

	var response map[string]interface{}
	err = json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Parcel created", response["message"])
}

func TestParcelHandler_CreateParcel_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewParcelHandler(mocks.NewMockParcelUC(ctrl), &fakeParcelCreator{})

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{}"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.CreateParcel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestParcelHandler_Advance_ConflictOnDoubleSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParcelUC := mocks.NewMockParcelUC(ctrl)
	handler := NewParcelHandler(mockParcelUC, &fakeParcelCreator{})

	userID := uuid.New()
	parcelID := uuid.New()

	mockParcelUC.EXPECT().
		Advance(gomock.Any(), parcelID, models.Actor{ID: userID, Role: models.RoleTransporter}).
		Return(nil, pkgerrors.ErrInvalidTransition).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()
	c := authedContext(e, request, recorder, userID, models.RoleTransporter)
	c.SetParamNames("id")
	c.SetParamValues(parcelID.String())

	err := handler.Advance(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestParcelHandler_Track_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParcelUC := mocks.NewMockParcelUC(ctrl)
	handler := NewParcelHandler(mockParcelUC, &fakeParcelCreator{})

	code := "TK-AB23CD45"
	parcel := &models.Parcel{ID: uuid.New(), TrackingCode: code, Status: models.ParcelStatusInTransit}

	mockParcelUC.EXPECT().
		TrackByCode(gomock.Any(), code).
		Return(parcel, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("code")
	c.SetParamValues(code)

	err := handler.Track(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestParcelHandler_Track_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParcelUC := mocks.NewMockParcelUC(ctrl)
	handler := NewParcelHandler(mockParcelUC, &fakeParcelCreator{})

	mockParcelUC.EXPECT().
		TrackByCode(gomock.Any(), "TK-ZZ99ZZ99").
		Return(nil, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("code")
	c.SetParamValues("TK-ZZ99ZZ99")

	err := handler.Track(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
