package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smarthub/internal/domain"
)

// ClientStateRepository persists per-browser key-value state in SQL.
type ClientStateRepository struct {
	db *gorm.DB
}

func NewClientStateRepository(db *gorm.DB) *ClientStateRepository {
	return &ClientStateRepository{db: db}
}

// Get returns the raw value for key, or ok=false when it was never set.
func (r *ClientStateRepository) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var row domain.ClientState
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND key = ?", clientID, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// Set upserts the value for key.
func (r *ClientStateRepository) Set(ctx context.Context, clientID, key, value string) error {
	row := domain.ClientState{
		ClientID:  clientID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *ClientStateRepository) Delete(ctx context.Context, clientID, key string) error {
	return r.db.WithContext(ctx).
		Where("client_id = ? AND key = ?", clientID, key).
		Delete(&domain.ClientState{}).Error
}

// DeleteOlderThan removes rows that were not touched for the given age.
func (r *ClientStateRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("updated_at < ?", time.Now().Add(-age)).
		Delete(&domain.ClientState{})
	return res.RowsAffected, res.Error
}
