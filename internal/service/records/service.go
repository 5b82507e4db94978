package records

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/logger"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type UseCase[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Update(ctx context.Context, id int64, patch repository.Patch[T]) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type MutationRecorder interface {
	RecordMutation(entity, action string)
}

type Service[T domain.Record[T]] struct {
	repo               repository.Repository[T]
	producer           Producer
	topic              string
	notificationsTopic string
	recorder           MutationRecorder
	now                func() time.Time
}

type Option[T domain.Record[T]] func(*Service[T])

// WithProducer publishes a kafka.RecordEvent to topic after each write.
func WithProducer[T domain.Record[T]](producer Producer, topic string) Option[T] {
	return func(s *Service[T]) {
		s.producer = producer
		s.topic = topic
	}
}

func WithNotificationsTopic[T domain.Record[T]](topic string) Option[T] {
	return func(s *Service[T]) {
		s.notificationsTopic = topic
	}
}

func WithMutationRecorder[T domain.Record[T]](recorder MutationRecorder) Option[T] {
	return func(s *Service[T]) {
		s.recorder = recorder
	}
}

func WithClock[T domain.Record[T]](now func() time.Time) Option[T] {
	return func(s *Service[T]) {
		s.now = now
	}
}

func NewService[T domain.Record[T]](repo repository.Repository[T], opts ...Option[T]) *Service[T] {
	s := &Service[T]{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return created, err
	}
	s.written(ctx, ActionCreated, created)
	return created, nil
}

func (s *Service[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Service[T]) Update(ctx context.Context, id int64, patch repository.Patch[T]) (T, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return updated, err
	}
	s.written(ctx, ActionUpdated, updated)
	return updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) (T, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return deleted, err
	}
	s.written(ctx, ActionDeleted, deleted)
	return deleted, nil
}

// written runs the side effects of a successful write. None of them can fail the request.
func (s *Service[T]) written(ctx context.Context, action string, record T) {
	log := logger.FromContext(ctx)
	log.Info("record "+action, "entity", record.Entity(), "id", record.Identity())

	if s.recorder != nil {
		s.recorder.RecordMutation(record.Entity(), action)
	}
	if err := s.publish(ctx, action, record); err != nil {
		log.Warn("failed to publish record event", "entity", record.Entity(), "id", record.Identity(), "error", err)
	}
}

func (s *Service[T]) publish(ctx context.Context, action string, record T) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	event := kafka.RecordEvent{
		ID:         uuid.NewString(),
		Type:       strings.ToLower(record.Entity()) + "." + action,
		Entity:     record.Entity(),
		Action:     action,
		RecordID:   record.Identity(),
		Record:     payload,
		OccurredAt: s.now().UTC(),
	}
	key := strings.ToLower(record.Entity()) + ":" + strconv.FormatInt(record.Identity(), 10)
	if err := s.producer.Publish(ctx, s.topic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}
