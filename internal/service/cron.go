package service

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// nextRunCount is the number of upcoming executions shown per expression.
const nextRunCount = 5

var cronFieldNames = [5]string{"minute", "hour", "day of month", "month", "day of week"}

// cronParser accepts the standard 5-field syntax plus @descriptors (@hourly, @daily, ...).
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// CronField is the explanation of a single position in the expression.
type CronField struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// CronResult is the breakdown of a validated cron expression.
type CronResult struct {
	Expression string      `json:"expression"`
	Fields     []CronField `json:"fields,omitempty"`
	NextRuns   []string    `json:"nextRuns"`
}

// CronService validates cron expressions and computes their upcoming run times.
type CronService interface {
	Explain(expression string) (*CronResult, error)
}

type cronService struct {
	now func() time.Time
}

// NewCronService constructs a new CronService.
func NewCronService() CronService {
	return &cronService{now: time.Now}
}

func (s *cronService) Explain(expression string) (*CronResult, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return nil, newValidationError("Expression is required")
	}

	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, newFormatError("Invalid cron expression: %v", err)
	}

	res := &CronResult{Expression: expr}

	// Descriptors (@daily etc.) have no positional fields to break down.
	if !strings.HasPrefix(expr, "@") {
		fields := strings.Fields(expr)
		for i, f := range fields {
			if i >= len(cronFieldNames) {
				break
			}
			res.Fields = append(res.Fields, CronField{
				Name:        cronFieldNames[i],
				Value:       f,
				Description: describeCronField(cronFieldNames[i], f),
			})
		}
	}

	t := s.now()
	for i := 0; i < nextRunCount; i++ {
		t = schedule.Next(t)
		if t.IsZero() {
			break
		}
		res.NextRuns = append(res.NextRuns, t.Format("2006-01-02 15:04:05 MST"))
	}
	return res, nil
}

// describeCronField renders a short human phrase for one field value. The
// parser has already validated the syntax, so this only needs to be readable.
func describeCronField(name, value string) string {
	switch {
	case value == "*":
		return "every " + name
	case strings.HasPrefix(value, "*/"):
		return "every " + strings.TrimPrefix(value, "*/") + " " + name + "(s)"
	case strings.Contains(value, ","):
		return name + " " + strings.ReplaceAll(value, ",", ", ")
	case strings.Contains(value, "-"):
		return name + " " + strings.Replace(value, "-", " through ", 1)
	default:
		return name + " " + value
	}
}
