package calendar

import "context"

type PreferenceRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (*Preference, error)
	Upsert(ctx context.Context, pref *Preference) error
}
