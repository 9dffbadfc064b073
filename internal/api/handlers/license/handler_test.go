package license

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/licensure/licensure/internal/mocks/api/handlers/license"
	"github.com/licensure/licensure/internal/api/dto"
	"github.com/licensure/licensure/internal/config"
	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
	licenserepo "github.com/licensure/licensure/internal/repository/license"
	licensesvc "github.com/licensure/licensure/internal/service/license"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocklicenseService, *mocks.Mocknotifier, *config.Config) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMocklicenseService(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(serviceMock, notifierMock, validator.New(), cfg)
	return handler, serviceMock, notifierMock, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, serviceMock, _, cfg := setupHandler(t)

	reqBody := dto.CreateLicenseRequest{
		Name:           "Crashlytics Pro",
		Provider:       "Google",
		Cost:           1200,
		IssuedDate:     "2026-01-10",
		ExpiryDate:     "2026-12-15",
		NotifySixMonth: true,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/licenses", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		Create(gomock.Any(), cfg.Retry, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ retry.Strategy, in licensesvc.CreateInput) (model.License, error) {
			assert.Equal(t, "Crashlytics Pro", in.Name)
			assert.Equal(t, time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC), in.ExpiryDate)
			assert.True(t, in.NotifySixMonth)
			return model.License{ID: uuid.New(), Name: in.Name}, nil
		})

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_RejectsBadDate(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	body := []byte(`{"name":"x","provider":"y","issued_date":"15-12-2026","expiry_date":"2026-12-15"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/licenses", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_NotFound(t *testing.T) {
	handler, serviceMock, _, cfg := setupHandler(t)
	id := uuid.New()

	body := []byte(`{"name":"renamed"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/licenses/"+id.String(), bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().
		Update(gomock.Any(), cfg.Retry, id, gomock.Any()).
		Return(model.License{}, licenserepo.ErrLicenseNotFound)

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Delete_Success(t *testing.T) {
	handler, serviceMock, _, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/licenses/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().Delete(gomock.Any(), id).Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/licenses/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_List_Success(t *testing.T) {
	handler, serviceMock, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/licenses", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().List(gomock.Any()).
		Return([]model.License{{ID: uuid.New(), Name: "Sentry"}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Notify_Success(t *testing.T) {
	handler, _, notifierMock, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/licenses/"+id.String()+"/notify", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	notifierMock.EXPECT().DispatchByID(gomock.Any(), id).
		Return(notify.Result{OK: true, Sent: 2, Failed: 1, Total: 3}, nil)

	handler.Notify(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var result notify.Result
	assert.NoError(t, json.NewDecoder(w.Result().Body).Decode(&result))
	assert.True(t, result.OK)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 3, result.Total)
}

func TestHandler_Notify_NothingSent(t *testing.T) {
	handler, _, notifierMock, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/licenses/"+id.String()+"/notify", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	notifierMock.EXPECT().DispatchByID(gomock.Any(), id).
		Return(notify.Result{Err: notify.ErrNoRecipients.Error()}, nil)

	handler.Notify(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Notify_UnknownLicense(t *testing.T) {
	handler, _, notifierMock, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/licenses/"+id.String()+"/notify", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	notifierMock.EXPECT().DispatchByID(gomock.Any(), id).
		Return(notify.Result{}, fmt.Errorf("resolve license: %w", licenserepo.ErrLicenseNotFound))

	handler.Notify(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
