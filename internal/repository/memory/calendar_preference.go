// Package memory keeps repository state in process memory. It backs the
// service when DATABASE_ENABLED is false.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
)

type calendarPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]calendar.Preference
}

func NewCalendarPreferenceRepository() calendar.PreferenceRepository {
	return &calendarPreferenceRepository{
		prefs: make(map[string]calendar.Preference),
	}
}

func (r *calendarPreferenceRepository) GetByCompanyID(ctx context.Context, companyID string) (*calendar.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prefs[companyID]
	if !ok {
		return nil, calendar.ErrPreferenceNotFound
	}
	return &p, nil
}

func (r *calendarPreferenceRepository) Upsert(ctx context.Context, pref *calendar.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.prefs[pref.CompanyID]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	} else {
		if pref.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate preference id: %w", err)
			}
			pref.ID = id.String()
		}
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now

	r.prefs[pref.CompanyID] = *pref
	return nil
}
