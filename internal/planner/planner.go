// Package planner runs the two-stage suggestion pipeline: one completion
// call turns a saved profile report into free-form planning advice, then a
// JSON-constrained call converts the advice into calendar event records.
// Both stages are strictly sequential and never retried.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robtzou/momentum/internal/groq"
)

// Chatter is the completion capability the planner needs. Implemented by
// groq.Client; tests use a scripted fake.
type Chatter interface {
	ChatCompletion(ctx context.Context, model string, messages []groq.Message, jsonOnly bool) (string, error)
}

// ErrReportNotFound means no profile report exists at the configured path.
var ErrReportNotFound = errors.New("profile report not found — run the quiz first to generate one")

// ParseError is returned when the extraction stage produces text that is not
// valid JSON. Raw preserves the model output verbatim for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model did not return valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Planner holds the configuration for one pipeline run.
type Planner struct {
	client     Chatter
	model      string
	reportPath string
	timezone   string
	now        func() time.Time
}

// New creates a Planner using the given completion client, model identifier,
// report path, and default IANA timezone.
func New(client Chatter, model, reportPath, timezone string) *Planner {
	return NewWithClock(client, model, reportPath, timezone, time.Now)
}

// NewWithClock creates a Planner with a custom clock (for testing).
func NewWithClock(client Chatter, model, reportPath, timezone string, now func() time.Time) *Planner {
	return &Planner{
		client:     client,
		model:      model,
		reportPath: reportPath,
		timezone:   timezone,
		now:        now,
	}
}

// Advise reads the saved profile report and asks the model for free-form
// planning advice. The call blocks until the service answers.
func (p *Planner) Advise(ctx context.Context) (string, error) {
	report, err := os.ReadFile(p.reportPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w (looked for %s)", ErrReportNotFound, p.reportPath)
	}
	if err != nil {
		return "", fmt.Errorf("reading report %s: %w", p.reportPath, err)
	}

	messages := []groq.Message{
		{Role: "system", Content: adviceSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Here is the student's profile:\n\n%s", report)},
	}

	advice, err := p.client.ChatCompletion(ctx, p.model, messages, false)
	if err != nil {
		return "", fmt.Errorf("requesting advice: %w", err)
	}
	return advice, nil
}

// ExtractEvents converts advice text into calendar event records via a
// JSON-constrained completion. Empty advice short-circuits to a nil result.
// Malformed model output comes back as a *ParseError carrying the raw text;
// individual event fields are deliberately not validated beyond the JSON
// structure itself. Each returned event gets a fresh unique ID.
func (p *Planner) ExtractEvents(ctx context.Context, advice string) (*Extraction, error) {
	if strings.TrimSpace(advice) == "" {
		return nil, nil
	}

	messages := []groq.Message{
		{Role: "system", Content: extractionSystemPrompt(p.now(), p.timezone)},
		{Role: "user", Content: fmt.Sprintf("Here is the schedule text to convert:\n\n%s", advice)},
	}

	raw, err := p.client.ChatCompletion(ctx, p.model, messages, true)
	if err != nil {
		return nil, fmt.Errorf("requesting event extraction: %w", err)
	}

	var result Extraction
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("extraction stage returned malformed JSON", "error", err)
		return nil, &ParseError{Raw: raw, Err: err}
	}
	if result.Events == nil {
		result.Events = []Event{}
	}
	for i := range result.Events {
		result.Events[i].ID = uuid.NewString()
	}
	return &result, nil
}
