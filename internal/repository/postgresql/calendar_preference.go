package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/pkg/database"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
)

type calendarPreferenceRepository struct {
	db *database.DB
}

// NewCalendarPreferenceRepository creates a new calendar preference repository
func NewCalendarPreferenceRepository(db *database.DB) calendar.PreferenceRepository {
	return &calendarPreferenceRepository{db: db}
}

// GetByCompanyID implements calendar.PreferenceRepository.
func (r *calendarPreferenceRepository) GetByCompanyID(ctx context.Context, companyID string) (*calendar.Preference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, language, year_mode, timezone, created_at, updated_at
		FROM calendar_preferences
		WHERE company_id = $1
	`

	var p calendar.Preference
	var lang, mode string

	err := q.QueryRow(ctx, query, companyID).Scan(
		&p.ID,
		&p.CompanyID,
		&lang,
		&mode,
		&p.Timezone,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get calendar preference: %w", err)
	}

	p.Language = calendar.Language(lang)
	p.YearMode = ethiopian.YearMode(mode)
	return &p, nil
}

// Upsert implements calendar.PreferenceRepository. ID and timestamps on
// pref are refreshed from the stored row.
func (r *calendarPreferenceRepository) Upsert(ctx context.Context, pref *calendar.Preference) error {
	q := GetQuerier(ctx, r.db)

	if pref.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate preference id: %w", err)
		}
		pref.ID = id.String()
	}

	query := `
		INSERT INTO calendar_preferences (id, company_id, language, year_mode, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (company_id)
		DO UPDATE SET language = EXCLUDED.language, year_mode = EXCLUDED.year_mode,
			timezone = EXCLUDED.timezone, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := q.QueryRow(ctx, query,
		pref.ID,
		pref.CompanyID,
		string(pref.Language),
		string(pref.YearMode),
		pref.Timezone,
		now,
	).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert calendar preference: %w", err)
	}

	return nil
}
