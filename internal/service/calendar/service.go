package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/metrics"
	"github.com/rona-hr/rona-backend-go/internal/pkg/sse"
)

const tickEvent = "tick"

// Config holds calendar service defaults
type Config struct {
	DefaultLanguage calendar.Language  // default: en
	YearMode        ethiopian.YearMode // default: uniform
	Timezone        string             // default: Africa/Addis_Ababa
}

type service struct {
	prefRepo   calendar.PreferenceRepository
	formatters *Formatters
	hub        *sse.Hub
	metrics    metrics.Recorder
	clock      Clock
	config     Config
}

// NewCalendarService creates the clock service. clock may be nil, in which
// case the system clock is used.
func NewCalendarService(
	prefRepo calendar.PreferenceRepository,
	hub *sse.Hub,
	recorder metrics.Recorder,
	clock Clock,
	cfg Config,
) (calendar.Service, error) {
	// Set defaults
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = calendar.LanguageEnglish
	}
	if cfg.YearMode == "" {
		cfg.YearMode = ethiopian.YearUniform
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Africa/Addis_Ababa"
	}
	if !cfg.DefaultLanguage.IsValid() {
		return nil, fmt.Errorf("%w: %q", calendar.ErrUnsupportedLanguage, cfg.DefaultLanguage)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrInvalidTimezone, err)
	}
	if clock == nil {
		clock = RealClock{}
	}
	if recorder == nil {
		recorder = metrics.NewRecorder(false)
	}

	bundle, err := LoadBundle()
	if err != nil {
		return nil, err
	}

	return &service{
		prefRepo:   prefRepo,
		formatters: NewFormatters(bundle),
		hub:        hub,
		metrics:    recorder,
		clock:      clock,
		config:     cfg,
	}, nil
}

// Now implements calendar.Service.
func (s *service) Now(ctx context.Context, lang calendar.Language) (calendar.ClockResponse, error) {
	if lang == "" {
		lang = s.config.DefaultLanguage
	}
	loc, err := loadLocation(s.config.Timezone)
	if err != nil {
		return calendar.ClockResponse{}, err
	}
	return s.render(s.clock.Now().In(loc), lang, s.config.YearMode)
}

// NowForCompany implements calendar.Service.
func (s *service) NowForCompany(ctx context.Context, companyID string) (calendar.ClockResponse, error) {
	pref, err := s.preference(ctx, companyID)
	if err != nil {
		return calendar.ClockResponse{}, err
	}
	loc, err := loadLocation(pref.Timezone)
	if err != nil {
		return calendar.ClockResponse{}, err
	}
	return s.render(s.clock.Now().In(loc), pref.Language, pref.YearMode)
}

// Convert implements calendar.Service.
func (s *service) Convert(ctx context.Context, req calendar.ConvertRequest) (calendar.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.ClockResponse{}, err
	}

	lang := s.config.DefaultLanguage
	if req.Language != "" {
		parsed, err := ParseLanguage(req.Language)
		if err != nil {
			return calendar.ClockResponse{}, err
		}
		lang = parsed
	}

	mode := s.config.YearMode
	if req.YearMode != "" {
		parsed, err := ethiopian.ParseYearMode(req.YearMode)
		if err != nil {
			return calendar.ClockResponse{}, fmt.Errorf("%w: %v", calendar.ErrInvalidYearMode, err)
		}
		mode = parsed
	}

	tz := s.config.Timezone
	if req.Timezone != "" {
		tz = req.Timezone
	}
	loc, err := loadLocation(tz)
	if err != nil {
		return calendar.ClockResponse{}, err
	}

	// Range checks happen before time.Date, which would silently normalise
	// 2025-02-30 into March.
	d, c := req.DateParts, req.TimeParts
	if err := ethiopian.ValidateDate(d.Year, d.Month, d.Day); err != nil {
		s.metrics.IncConversions(string(lang), metrics.ResultError)
		return calendar.ClockResponse{}, err
	}
	if _, err := ethiopian.ConvertTime(c.Hour, c.Minute, c.Second); err != nil {
		s.metrics.IncConversions(string(lang), metrics.ResultError)
		return calendar.ClockResponse{}, err
	}

	instant := time.Date(d.Year, time.Month(d.Month), d.Day, c.Hour, c.Minute, c.Second, 0, loc)
	// A wall time inside a DST gap does not exist in loc; time.Date moves it.
	if instant.Hour() != c.Hour || instant.Minute() != c.Minute {
		s.metrics.IncConversions(string(lang), metrics.ResultError)
		return calendar.ClockResponse{}, &ethiopian.TimeInputError{Field: "time", Value: c.Hour}
	}
	return s.render(instant, lang, mode)
}

// Rules implements calendar.Service.
func (s *service) Rules() []ethiopian.MonthRule {
	return ethiopian.Rules()
}

// GetPreference implements calendar.Service.
func (s *service) GetPreference(ctx context.Context, companyID string) (calendar.PreferenceResponse, error) {
	pref, err := s.preference(ctx, companyID)
	if err != nil {
		return calendar.PreferenceResponse{}, err
	}
	return toPreferenceResponse(pref), nil
}

// UpdatePreference implements calendar.Service.
func (s *service) UpdatePreference(ctx context.Context, companyID string, req calendar.UpdatePreferenceRequest) (calendar.PreferenceResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.PreferenceResponse{}, err
	}

	pref, err := s.preference(ctx, companyID)
	if err != nil {
		return calendar.PreferenceResponse{}, err
	}

	if req.Language != nil {
		pref.Language = calendar.Language(strings.ToLower(*req.Language))
	}
	if req.YearMode != nil {
		mode, err := ethiopian.ParseYearMode(*req.YearMode)
		if err != nil {
			return calendar.PreferenceResponse{}, fmt.Errorf("%w: %v", calendar.ErrInvalidYearMode, err)
		}
		pref.YearMode = mode
	}
	if req.Timezone != nil {
		pref.Timezone = *req.Timezone
	}

	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return calendar.PreferenceResponse{}, fmt.Errorf("failed to save calendar preference: %w", err)
	}

	slog.Info("Calendar preference updated",
		"company_id", companyID,
		"lang", pref.Language,
		"year_mode", pref.YearMode,
		"timezone", pref.Timezone,
	)
	return toPreferenceResponse(pref), nil
}

// StreamTopicFor implements calendar.Service.
func (s *service) StreamTopicFor(ctx context.Context, companyID string, lang calendar.Language) (calendar.StreamTopic, error) {
	if companyID != "" {
		pref, err := s.preference(ctx, companyID)
		if err != nil {
			return calendar.StreamTopic{}, err
		}
		if lang == "" {
			lang = pref.Language
		}
		return calendar.StreamTopic{Language: lang, YearMode: pref.YearMode, Timezone: pref.Timezone}, nil
	}

	if lang == "" {
		lang = s.config.DefaultLanguage
	}
	return calendar.StreamTopic{Language: lang, YearMode: s.config.YearMode, Timezone: s.config.Timezone}, nil
}

// Subscribe implements calendar.Service. The subscription ends when the
// returned cleanup runs or ctx is done, whichever comes first.
func (s *service) Subscribe(ctx context.Context, topic calendar.StreamTopic) (<-chan sse.Event, func()) {
	ch, cleanup := s.hub.Subscribe(topic.Key())
	stop := context.AfterFunc(ctx, cleanup)

	slog.Debug("Clock stream subscribed", "topic", topic.Key())
	return ch, func() {
		stop()
		cleanup()
	}
}

// Broadcast implements calendar.Service. One frame is rendered per topic
// and shared by all of that topic's subscribers.
func (s *service) Broadcast(ctx context.Context) error {
	now := s.clock.Now()
	perLanguage := make(map[calendar.Language]int)
	var errs []error

	for _, key := range s.hub.Topics() {
		if err := ctx.Err(); err != nil {
			return err
		}

		topic, err := calendar.ParseStreamTopic(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		loc, err := loadLocation(topic.Timezone)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		frame, err := s.render(now.In(loc), topic.Language, topic.YearMode)
		if err != nil {
			errs = append(errs, fmt.Errorf("topic %s: %w", key, err))
			continue
		}

		s.hub.Publish(key, sse.Event{Event: tickEvent, Data: frame})
		perLanguage[topic.Language] += s.hub.SubscriberCount(key)
	}

	for _, lang := range calendar.AllLanguages() {
		s.metrics.SetStreamSubscribers(string(lang), perLanguage[lang])
	}

	return errors.Join(errs...)
}

func (s *service) render(t time.Time, lang calendar.Language, mode ethiopian.YearMode) (calendar.ClockResponse, error) {
	start := time.Now()

	formatter, err := s.formatters.Get(lang)
	if err != nil {
		return calendar.ClockResponse{}, err
	}

	clock, err := formatter.Format(t, mode)
	if err != nil {
		s.metrics.IncConversions(string(lang), metrics.ResultError)
		return calendar.ClockResponse{}, err
	}

	s.metrics.IncConversions(string(lang), metrics.ResultOK)
	s.metrics.ObserveConversionDuration(string(lang), time.Since(start))
	return calendar.NewClockResponse(clock, mode), nil
}

// preference returns the stored preference, or the configured defaults when
// the company has none yet.
func (s *service) preference(ctx context.Context, companyID string) (*calendar.Preference, error) {
	if companyID == "" {
		return nil, calendar.ErrCompanyIDRequired
	}

	pref, err := s.prefRepo.GetByCompanyID(ctx, companyID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, calendar.ErrPreferenceNotFound) {
		return nil, fmt.Errorf("failed to load calendar preference: %w", err)
	}

	return &calendar.Preference{
		CompanyID: companyID,
		Language:  s.config.DefaultLanguage,
		YearMode:  s.config.YearMode,
		Timezone:  s.config.Timezone,
	}, nil
}

func toPreferenceResponse(pref *calendar.Preference) calendar.PreferenceResponse {
	resp := calendar.PreferenceResponse{
		CompanyID: pref.CompanyID,
		Language:  pref.Language,
		YearMode:  pref.YearMode,
		Timezone:  pref.Timezone,
		IsDefault: pref.ID == "",
	}
	if !pref.UpdatedAt.IsZero() {
		updatedAt := pref.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrInvalidTimezone, err)
	}
	return loc, nil
}
