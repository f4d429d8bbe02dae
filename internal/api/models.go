package api

import (
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/service"
)

// LastPeriodRequest is the body of PUT /api/tracker/last-period.
// Today is the client's calendar date and defaults to the server's.
type LastPeriodRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Today string `json:"today,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// PredictRequest is the body of POST /api/cycle/predict.
// Today defaults to the server's current date.
type PredictRequest struct {
	LastPeriodStart string `json:"last_period_start" validate:"required,datetime=2006-01-02"`
	CycleLength     int    `json:"cycle_length" validate:"required"`
	Today           string `json:"today,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AdjustRequest is the body of POST /api/cycle/adjust.
type AdjustRequest struct {
	CycleLength int `json:"cycle_length" validate:"required"`
	Delta       int `json:"delta" validate:"required"`
}

// AdjustResponse carries the bounded cycle length.
type AdjustResponse struct {
	CycleLength int  `json:"cycle_length"`
	Changed     bool `json:"changed"`
}

// ShareLocationRequest is the body of POST /api/help/share-location.
type ShareLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	SOS       bool     `json:"sos"`
}

// FeedbackRequest is the body of POST /api/feedback.
type FeedbackRequest struct {
	Type     string `json:"type" validate:"required,oneof=suggestion bug general"`
	Feedback string `json:"feedback" validate:"required,max=5000"`
	Name     string `json:"name,omitempty" validate:"max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// FeedbackResponse acknowledges a feedback submission.
type FeedbackResponse struct {
	Message string `json:"message"`
}

// ProfileResponse is a CycleProfile with its date rendered as YYYY-MM-DD.
type ProfileResponse struct {
	LastPeriodStart string `json:"last_period_start,omitempty"`
	CycleLength     int    `json:"cycle_length"`
}

// FertileWindowResponse is a FertileWindow with rendered dates.
type FertileWindowResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Ovulation string `json:"ovulation"`
}

// PredictionResponse is the rendered engine output. Every field except
// Phase is omitted when no last period start is set.
type PredictionResponse struct {
	NextPeriodStart string                 `json:"next_period_start,omitempty"`
	DaysUntil       *int                   `json:"days_until,omitempty"`
	DaysUntilText   string                 `json:"days_until_text,omitempty"`
	Status          string                 `json:"status,omitempty"`
	Phase           string                 `json:"phase,omitempty"`
	PhaseLabel      string                 `json:"phase_label,omitempty"`
	FertileWindow   *FertileWindowResponse `json:"fertile_window,omitempty"`
}

// TrackerResponse is the tracker screen state. Token and ExpiresAt are set
// whenever the request produced a new session token.
type TrackerResponse struct {
	Token        string             `json:"token,omitempty"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
	Profile      ProfileResponse    `json:"profile"`
	Prediction   PredictionResponse `json:"prediction"`
	CanIncrement bool               `json:"can_increment"`
	CanDecrement bool               `json:"can_decrement"`
}

// CalendarDayResponse is one rendered cell of the month grid.
type CalendarDayResponse struct {
	Date                   string `json:"date"`
	InMonth                bool   `json:"in_month"`
	IsToday                bool   `json:"is_today,omitempty"`
	IsLastPeriodStart      bool   `json:"is_last_period_start,omitempty"`
	IsPredictedPeriodStart bool   `json:"is_predicted_period_start,omitempty"`
	IsFertile              bool   `json:"is_fertile,omitempty"`
	IsOvulation            bool   `json:"is_ovulation,omitempty"`
	Phase                  string `json:"phase,omitempty"`
}

// CalendarResponse is the month grid for the session profile.
type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

// InfoResponse lists the educational sections.
type InfoResponse struct {
	Sections []content.Section `json:"sections"`
}

// StoreResponse is a store with a directions link.
type StoreResponse struct {
	content.Store
	DirectionsURL string `json:"directions_url"`
}

// StoresResponse lists stores, nearest first when a position was given.
type StoresResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// ContactsResponse lists emergency contacts.
type ContactsResponse struct {
	Contacts  []content.Contact `json:"contacts"`
	SOSNumber string            `json:"sos_number"`
}

// monthLayout is the format of the calendar month query parameter.
const monthLayout = "2006-01"

func profileToResponse(p domain.CycleProfile) ProfileResponse {
	resp := ProfileResponse{CycleLength: p.CycleLength}
	if p.HasLastPeriod() {
		resp.LastPeriodStart = domain.FormatDate(p.LastPeriodStart)
	}
	return resp
}

func predictionToResponse(p *domain.Prediction) PredictionResponse {
	if p.IsEmpty() {
		return PredictionResponse{}
	}
	resp := PredictionResponse{
		NextPeriodStart: domain.FormatDate(*p.NextPeriodStart),
		DaysUntil:       p.DaysUntil,
		DaysUntilText:   p.DaysUntilText(),
		Status:          string(p.Status),
		Phase:           string(p.Phase),
		PhaseLabel:      p.Phase.Label(),
	}
	if p.FertileWindow != nil {
		resp.FertileWindow = &FertileWindowResponse{
			Start:     domain.FormatDate(p.FertileWindow.Start),
			End:       domain.FormatDate(p.FertileWindow.End),
			Ovulation: domain.FormatDate(p.FertileWindow.Ovulation),
		}
	}
	return resp
}

func viewToResponse(v *service.TrackerView) TrackerResponse {
	return TrackerResponse{
		Profile:      profileToResponse(v.Profile),
		Prediction:   predictionToResponse(v.Prediction),
		CanIncrement: v.CanIncrement,
		CanDecrement: v.CanDecrement,
	}
}

func calendarToResponse(c *cycle.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, len(c.Days))
	for i, d := range c.Days {
		days[i] = CalendarDayResponse{
			Date:                   domain.FormatDate(d.Date),
			InMonth:                d.InMonth,
			IsToday:                d.IsToday,
			IsLastPeriodStart:      d.IsLastPeriodStart,
			IsPredictedPeriodStart: d.IsPredictedPeriodStart,
			IsFertile:              d.IsFertile,
			IsOvulation:            d.IsOvulation,
			Phase:                  string(d.Phase),
		}
	}
	return CalendarResponse{Month: c.Month.Format(monthLayout), Days: days}
}

func storesToResponse(stores []content.Store) StoresResponse {
	out := make([]StoreResponse, len(stores))
	for i, s := range stores {
		out[i] = StoreResponse{Store: s, DirectionsURL: s.DirectionsURL()}
	}
	return StoresResponse{Stores: out}
}
