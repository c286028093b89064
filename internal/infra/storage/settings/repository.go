// Package settings stores the salon configuration as one JSONB document
// per fixed key. The documents are decoded into typed structs here, at the
// boundary, with defaults applied exactly once - rule logic downstream
// never sees a partially-defaulted value.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonhub/booking-service/internal/domain"
	"github.com/salonhub/booking-service/pkg/dbmetrics"
	"github.com/salonhub/booking-service/pkg/psqlbuilder"
)

// Repository provides typed access to the settings table
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a settings repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours returns the configured weekly schedule.
// A missing row yields the documented defaults; a query or decode failure
// is an error so callers fail closed instead of booking against guesses.
func (r *Repository) GetBusinessHours(ctx context.Context) (*domain.BusinessHours, error) {
	raw, err := r.getValue(ctx, domain.SettingBusinessHours)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return domain.DefaultBusinessHours(), nil
	}

	var hours domain.BusinessHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, domain.SettingBusinessHours, err)
	}

	return &hours, nil
}

// GetBookingLimits returns the configured booking policy with defaults
// applied to any missing values
func (r *Repository) GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error) {
	raw, err := r.getValue(ctx, domain.SettingBookingLimits)
	if err != nil {
		return nil, err
	}

	var limits domain.BookingLimits
	if raw != nil {
		if err := json.Unmarshal(raw, &limits); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, domain.SettingBookingLimits, err)
		}
	}
	limits.Normalize()

	return &limits, nil
}

// UpsertBusinessHours stores the weekly schedule
func (r *Repository) UpsertBusinessHours(ctx context.Context, hours *domain.BusinessHours) error {
	return r.upsertValue(ctx, domain.SettingBusinessHours, hours)
}

// UpsertBookingLimits stores the booking policy
func (r *Repository) UpsertBookingLimits(ctx context.Context, limits *domain.BookingLimits) error {
	return r.upsertValue(ctx, domain.SettingBookingLimits, limits)
}

func (r *Repository) getValue(ctx context.Context, key string) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getValue - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getValue - scan %s: %v", ErrExecQuery, key, err)
	}

	return raw, nil
}

func (r *Repository) upsertValue(ctx context.Context, key string, value interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsertValue - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertValue - execute upsert for %s: %v", ErrExecQuery, key, err)
	}

	return nil
}
