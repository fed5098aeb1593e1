package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/goccy/go-json"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/handler/http/response"
	"github.com/rona-hr/rona-backend-go/internal/pkg/jwt"
	calendarService "github.com/rona-hr/rona-backend-go/internal/service/calendar"
)

const defaultKeepaliveInterval = 30 * time.Second

// CalendarHandler defines the clock widget handler interface
type CalendarHandler interface {
	// Public clock
	Now(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
	Rules(w http.ResponseWriter, r *http.Request)

	// Company scoped
	MyNow(w http.ResponseWriter, r *http.Request)
	GetPreference(w http.ResponseWriter, r *http.Request)
	UpdatePreference(w http.ResponseWriter, r *http.Request)

	// SSE
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService   calendar.Service
	jwtService        jwt.Service
	keepaliveInterval time.Duration
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService calendar.Service, jwtService jwt.Service) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService:   calendarService,
		jwtService:        jwtService,
		keepaliveInterval: defaultKeepaliveInterval,
	}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// getCompanyIDFromContext extracts company_id from JWT context
func getCompanyIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if companyID, ok := claims["company_id"].(string); ok {
		return companyID
	}
	return ""
}

// requestLanguage resolves ?lang= first, then Accept-Language.
// An unknown Accept-Language falls through to the server default.
func requestLanguage(r *http.Request) (calendar.Language, error) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return calendarService.ParseLanguage(lang)
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if lang, err := calendarService.ParseLanguage(header); err == nil {
			return lang, nil
		}
	}
	return "", nil
}

// Now returns the current clock in the requested language
func (h *calendarHandlerImpl) Now(w http.ResponseWriter, r *http.Request) {
	lang, err := requestLanguage(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	clock, err := h.calendarService.Now(r.Context(), lang)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clock)
}

// Convert renders a given Gregorian date and time
func (h *calendarHandlerImpl) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := calendar.ConvertRequest{
		Date:     query.Get("date"),
		Time:     query.Get("time"),
		Language: query.Get("lang"),
		YearMode: query.Get("year_mode"),
		Timezone: query.Get("timezone"),
	}

	clock, err := h.calendarService.Convert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clock)
}

// Rules returns the month mapping table
func (h *calendarHandlerImpl) Rules(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.calendarService.Rules())
}

// MyNow returns the current clock in the company's preferred format
func (h *calendarHandlerImpl) MyNow(w http.ResponseWriter, r *http.Request) {
	companyID := getCompanyIDFromContext(r)
	if companyID == "" {
		response.HandleError(w, calendar.ErrCompanyIDRequired)
		return
	}

	clock, err := h.calendarService.NowForCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clock)
}

// GetPreference returns the company's clock preference
func (h *calendarHandlerImpl) GetPreference(w http.ResponseWriter, r *http.Request) {
	companyID := getCompanyIDFromContext(r)
	if companyID == "" {
		response.HandleError(w, calendar.ErrCompanyIDRequired)
		return
	}

	pref, err := h.calendarService.GetPreference(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pref)
}

// UpdatePreference upserts the company's clock preference
func (h *calendarHandlerImpl) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	companyID := getCompanyIDFromContext(r)
	if companyID == "" {
		response.HandleError(w, calendar.ErrCompanyIDRequired)
		return
	}

	var req calendar.UpdatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	pref, err := h.calendarService.UpdatePreference(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar preference updated", pref)
}

// StreamToken issues a short-lived token for the clock stream
func (h *calendarHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(userID, getCompanyIDFromContext(r))
	if err != nil {
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, calendar.StreamTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles the SSE connection that pushes a clock frame every tick
func (h *calendarHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	lang := calendar.Language("")
	if raw := r.URL.Query().Get("lang"); raw != "" {
		parsed, err := calendarService.ParseLanguage(raw)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		lang = parsed
	}

	// EventSource cannot send headers, so a company stream authenticates via ?token=
	companyID := ""
	if tokenStr := r.URL.Query().Get("token"); tokenStr != "" {
		claims, err := h.jwtService.ValidateStreamToken(tokenStr)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		companyID = claims.CompanyID
	}

	topic, err := h.calendarService.StreamTopicFor(r.Context(), companyID, lang)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.calendarService.Subscribe(r.Context(), topic)
	defer cleanup()

	connected, _ := json.Marshal(map[string]string{
		"status":    "connected",
		"lang":      string(topic.Language),
		"year_mode": string(topic.YearMode),
		"timezone":  topic.Timezone,
	})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Failed to encode clock frame", "topic", event.Topic, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
