package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHotelUseCase is a mock implementation of records.UseCase[domain.Hotel]
type MockHotelUseCase struct {
	mock.Mock
}

func (m *MockHotelUseCase) Create(ctx context.Context, record domain.Hotel) (domain.Hotel, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) List(ctx context.Context, skip, limit int) ([]domain.Hotel, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Update(ctx context.Context, id int64, patch repository.Patch[domain.Hotel]) (domain.Hotel, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Delete(ctx context.Context, id int64) (domain.Hotel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Hotel), args.Error(1)
}

func newHotelHandler(svc *MockHotelUseCase) *ResourceHandler[domain.Hotel, validation.HotelCreate, validation.HotelUpdate] {
	return NewResourceHandler[domain.Hotel, validation.HotelCreate, validation.HotelUpdate](svc)
}

func testContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestResourceHandler_create(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodPost, "/hotels/", []byte(`{"name":"Inn","location":"Oslo","available_rooms":3,"price_per_night":90}`))

	in := domain.Hotel{Name: "Inn", Location: "Oslo", AvailableRooms: 3, PricePerNight: 90}
	stored := in
	stored.HotelID = 1
	mockService.On("Create", c.Request.Context(), in).Return(stored, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response domain.Hotel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, stored, response)

	mockService.AssertExpectations(t)
}

func TestResourceHandler_createValidationError(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodPost, "/hotels/", []byte(`{"name":"Inn","location":"Oslo","available_rooms":-1,"price_per_night":90}`))

	handler.create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var response errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "available_rooms", response.Field)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResourceHandler_list(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodGet, "/hotels/?skip=2&limit=5", nil)
	mockService.On("List", c.Request.Context(), 2, 5).Return([]domain.Hotel{{HotelID: 3}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_listDefaults(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodGet, "/hotels/", nil)
	mockService.On("List", c.Request.Context(), 0, 100).Return([]domain.Hotel{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestResourceHandler_listBadQuery(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	for _, target := range []string{"/hotels/?skip=abc", "/hotels/?limit=-1"} {
		c, w := testContext(http.MethodGet, target, nil)
		handler.list(c)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, target)
	}
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestResourceHandler_get(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodGet, "/hotels/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("Get", c.Request.Context(), int64(1)).Return(domain.Hotel{HotelID: 1, Name: "Inn"}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_getNotFound(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodGet, "/hotels/8", nil)
	c.Params = gin.Params{{Key: "id", Value: "8"}}
	mockService.On("Get", c.Request.Context(), int64(8)).Return(domain.Hotel{}, domain.NewNotFound("Hotel", 8))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Hotel not found"}`, w.Body.String())
}

func TestResourceHandler_getBadID(t *testing.T) {
	handler := newHotelHandler(&MockHotelUseCase{})

	c, w := testContext(http.MethodGet, "/hotels/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.get(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResourceHandler_update(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodPut, "/hotels/1", []byte(`{"available_rooms":0}`))
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	zero := 0
	mockService.On("Update", c.Request.Context(), int64(1), validation.HotelUpdate{AvailableRooms: &zero}).
		Return(domain.Hotel{HotelID: 1, AvailableRooms: 0}, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_delete(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodDelete, "/hotels/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("Delete", c.Request.Context(), int64(1)).Return(domain.Hotel{HotelID: 1, Name: "Inn"}, nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response domain.Hotel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Inn", response.Name)
}

func TestResourceHandler_internalError(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)

	c, w := testContext(http.MethodDelete, "/hotels/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("Delete", c.Request.Context(), int64(1)).Return(domain.Hotel{}, errors.New("connection reset"))

	handler.delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResourceHandler_createUsesClock(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := newHotelHandler(mockService)
	handler.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	c, w := testContext(http.MethodPost, "/hotels/", []byte(`{"name":"Inn","location":"Oslo","available_rooms":1,"price_per_night":0,"rating":4.5}`))
	rating := 4.5
	mockService.On("Create", c.Request.Context(), domain.Hotel{Name: "Inn", Location: "Oslo", AvailableRooms: 1, Rating: &rating}).
		Return(domain.Hotel{HotelID: 1}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
