package service

import (
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates second-precision from millisecond-precision Unix
// timestamps: values at or above it are treated as milliseconds. The cutoff
// corresponds to the year 2286 in seconds, far outside anything a user means.
const millisThreshold = int64(9_999_999_999)

// datetimeLayouts are the accepted textual date-time inputs, tried in order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TimestampResult presents one instant in the forms the tool page displays.
type TimestampResult struct {
	UnixSeconds int64  `json:"unixSeconds"`
	UnixMillis  int64  `json:"unixMillis"`
	RFC3339     string `json:"rfc3339"`
	UTC         string `json:"utc"`
	Local       string `json:"local"`
	Relative    string `json:"relative"`
}

// TimestampService converts between Unix timestamps and textual date-times.
type TimestampService interface {
	// Convert accepts either a Unix timestamp (seconds or milliseconds,
	// auto-detected) or a date-time string in a handful of common layouts.
	Convert(input string) (*TimestampResult, error)

	// Now returns the current instant in all displayed forms.
	Now() *TimestampResult
}

type timestampService struct {
	now func() time.Time
}

// NewTimestampService constructs a new TimestampService.
func NewTimestampService() TimestampService {
	return &timestampService{now: time.Now}
}

func (s *timestampService) Convert(input string) (*TimestampResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, newValidationError("Input is required")
	}

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		t := time.Unix(n, 0)
		if n > millisThreshold || n < -millisThreshold {
			t = time.UnixMilli(n)
		}
		return s.result(t), nil
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return s.result(t), nil
		}
	}
	return nil, newValidationError("Unrecognized timestamp or date-time: %q", trimmed)
}

func (s *timestampService) Now() *TimestampResult {
	return s.result(s.now())
}

func (s *timestampService) result(t time.Time) *TimestampResult {
	return &TimestampResult{
		UnixSeconds: t.Unix(),
		UnixMillis:  t.UnixMilli(),
		RFC3339:     t.Format(time.RFC3339),
		UTC:         t.UTC().Format("2006-01-02 15:04:05 UTC"),
		Local:       t.Local().Format(claimTimeLayout),
		Relative:    relativeTo(s.now(), t),
	}
}

// relativeTo renders a coarse human distance between now and t.
func relativeTo(now, t time.Time) string {
	d := now.Sub(t)
	past := d >= 0
	if !past {
		d = -d
	}

	var amount string
	switch {
	case d < time.Minute:
		amount = strconv.Itoa(int(d.Seconds())) + " seconds"
	case d < time.Hour:
		amount = strconv.Itoa(int(d.Minutes())) + " minutes"
	case d < 24*time.Hour:
		amount = strconv.Itoa(int(d.Hours())) + " hours"
	default:
		amount = strconv.Itoa(int(d.Hours()/24)) + " days"
	}

	if past {
		return amount + " ago"
	}
	return "in " + amount
}
