package records

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, record domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, skip, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, patch repository.Patch[domain.Booking]) (domain.Booking, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordMutation(entity, action string) {
	m.Called(entity, action)
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func sampleBooking() domain.Booking {
	hotelID := int64(4)
	return domain.Booking{
		BookingID:   1,
		UserID:      2,
		BookingType: domain.BookingTypeHotel,
		HotelID:     &hotelID,
		BookingDate: fixedNow,
		TotalAmount: 300,
	}
}

func TestService_CreatePublishesEvent(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	producer := &MockProducer{}
	recorder := &MockRecorder{}
	svc := NewService[domain.Booking](repo,
		WithProducer[domain.Booking](producer, "records"),
		WithNotificationsTopic[domain.Booking]("notifications"),
		WithMutationRecorder[domain.Booking](recorder),
		WithClock[domain.Booking](func() time.Time { return fixedNow }),
	)

	in := sampleBooking()
	in.BookingID = 0
	stored := sampleBooking()
	repo.On("Create", ctx, in).Return(stored, nil)
	recorder.On("RecordMutation", "Booking", ActionCreated).Return()

	var published kafka.RecordEvent
	producer.On("Publish", ctx, "records", "booking:1", mock.AnythingOfType("kafka.RecordEvent")).
		Run(func(args mock.Arguments) { published = args.Get(3).(kafka.RecordEvent) }).
		Return(nil)
	producer.On("Publish", ctx, "notifications", "booking:1", mock.AnythingOfType("kafka.RecordEvent")).Return(nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	assert.Equal(t, "booking.created", published.Type)
	assert.Equal(t, "Booking", published.Entity)
	assert.Equal(t, int64(1), published.RecordID)
	assert.Equal(t, fixedNow, published.OccurredAt)
	assert.NotEmpty(t, published.ID)

	var decoded domain.Booking
	require.NoError(t, json.Unmarshal(published.Record, &decoded))
	assert.Equal(t, stored, decoded)

	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestService_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	producer := &MockProducer{}
	svc := NewService[domain.Booking](repo, WithProducer[domain.Booking](producer, "records"))

	repo.On("Delete", ctx, int64(1)).Return(sampleBooking(), nil)
	producer.On("Publish", ctx, "records", "booking:1", mock.Anything).Return(errors.New("broker unavailable"))

	got, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sampleBooking(), got)
}

func TestService_FailedWriteHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	producer := &MockProducer{}
	svc := NewService[domain.Booking](repo, WithProducer[domain.Booking](producer, "records"))

	notFound := domain.NewNotFound("Booking", 9)
	repo.On("Update", ctx, int64(9), mock.Anything).Return(domain.Booking{}, notFound)

	_, err := svc.Update(ctx, 9, repository.PatchFunc[domain.Booking](func(*domain.Booking) {}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ReadsDelegate(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	svc := NewService[domain.Booking](repo)

	repo.On("Get", ctx, int64(1)).Return(sampleBooking(), nil)
	repo.On("List", ctx, 0, 100).Return([]domain.Booking{sampleBooking()}, nil)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sampleBooking(), got)

	list, err := svc.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertExpectations(t)
}

func TestService_WithoutProducer(t *testing.T) {
	ctx := context.Background()
	svc := NewService[domain.Hotel](repository.NewMemoryRepository[domain.Hotel]())

	h, err := svc.Create(ctx, domain.Hotel{Name: "Inn"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.HotelID)
}
