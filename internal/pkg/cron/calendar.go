package cron

import (
	"context"
	"time"

	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
)

// CalendarJobs pushes clock frames to stream subscribers
type CalendarJobs struct {
	calendarSvc calendar.Service
	interval    time.Duration
}

func NewCalendarJobs(calendarSvc calendar.Service, interval time.Duration) *CalendarJobs {
	if interval <= 0 {
		interval = time.Second
	}
	return &CalendarJobs{
		calendarSvc: calendarSvc,
		interval:    interval,
	}
}

func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("broadcast_clock_tick", j.interval, j.BroadcastClockTick)
}

func (j *CalendarJobs) BroadcastClockTick(ctx context.Context) error {
	return j.calendarSvc.Broadcast(ctx)
}
