package store

import (
	"context"

	"gorm.io/gorm"

	"fraternos-backend/internal/model"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a connected GORM handle (mysql or sqlite) as an
// EventStore.
func NewGormStore(db *gorm.DB) EventStore {
	return &gormStore{db: db}
}

func (s *gormStore) Append(ctx context.Context, ev *model.AttendanceEvent) error {
	return s.db.WithContext(ctx).Create(ev).Error
}

func (s *gormStore) ByMemberAndDate(ctx context.Context, memberID, date string) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND date = ?", memberID, date).
		Find(&events).Error
	return events, err
}

func (s *gormStore) ByMember(ctx context.Context, memberID string) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&events).Error
	return events, err
}

func (s *gormStore) ByDate(ctx context.Context, date string) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := s.db.WithContext(ctx).Where("date = ?", date).Find(&events).Error
	return events, err
}

func (s *gormStore) All(ctx context.Context) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := s.db.WithContext(ctx).Find(&events).Error
	return events, err
}
