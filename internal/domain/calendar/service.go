package calendar

import (
	"context"

	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/sse"
)

type Service interface {
	// Clock
	Now(ctx context.Context, lang Language) (ClockResponse, error)
	NowForCompany(ctx context.Context, companyID string) (ClockResponse, error)
	Convert(ctx context.Context, req ConvertRequest) (ClockResponse, error)
	Rules() []ethiopian.MonthRule

	// Preferences
	GetPreference(ctx context.Context, companyID string) (PreferenceResponse, error)
	UpdatePreference(ctx context.Context, companyID string, req UpdatePreferenceRequest) (PreferenceResponse, error)

	// Stream
	StreamTopicFor(ctx context.Context, companyID string, lang Language) (StreamTopic, error)
	Subscribe(ctx context.Context, topic StreamTopic) (<-chan sse.Event, func())
	Broadcast(ctx context.Context) error
}
