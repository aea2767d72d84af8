package filing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finverse/internal/domain"
)

// Translate reduces a subprocess outcome to a parsed filing or to one of the
// taxonomy errors. The success path expects a single JSON document on stdout
// carrying both the structured and the chunked view.
func Translate(outcome Outcome, timeout time.Duration) (*domain.ParsedFiling, error) {
	switch outcome.Kind {
	case OutcomeProcessFailure:
		return nil, fmt.Errorf("%w with code %d: %s",
			domain.ErrProcessFailed, outcome.ExitCode, strings.TrimSpace(outcome.Stderr))
	case OutcomeTimedOut:
		return nil, fmt.Errorf("%w after %s",
			domain.ErrParseTimeout, timeoutText(timeout))
	}

	var envelope struct {
		Structured json.RawMessage `json:"structured"`
		Chunked    json.RawMessage `json:"chunked"`
	}
	if err := json.Unmarshal([]byte(outcome.Stdout), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)",
			domain.ErrMalformedOutput, err, truncate(outcome.Stdout, 500))
	}
	if len(envelope.Structured) == 0 || len(envelope.Chunked) == 0 {
		return nil, fmt.Errorf("%w: output is missing the structured or chunked view",
			domain.ErrMalformedOutput)
	}

	var parsed domain.ParsedFiling
	if err := json.Unmarshal(envelope.Structured, &parsed.Structured); err != nil {
		return nil, fmt.Errorf("%w: structured view: %v", domain.ErrMalformedOutput, err)
	}
	if err := json.Unmarshal(envelope.Chunked, &parsed.Chunked); err != nil {
		return nil, fmt.Errorf("%w: chunked view: %v", domain.ErrMalformedOutput, err)
	}
	return &parsed, nil
}

// timeoutText renders whole-minute timeouts as "N minutes"; anything finer
// falls back to the duration's own notation so a 30s budget never reads as
// "0 minutes".
func timeoutText(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		if m := int(d / time.Minute); m > 1 {
			return fmt.Sprintf("%d minutes", m)
		}
		return "1 minute"
	}
	return d.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
