package filing

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"finverse/internal/domain"
)

var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// YearValue accepts a JSON string or number and preserves its raw text, so
// clients may send the year either way without changing validation behavior.
type YearValue string

// UnmarshalJSON implements the string-or-number contract.
func (y *YearValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*y = YearValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*y = YearValue(n.String())
		return nil
	}
	return fmt.Errorf("year must be a string or a number")
}

// RawRequest carries the unvalidated fields of a filing request as received
// from the client.
type RawRequest struct {
	Ticker   string    `json:"ticker"`
	FormType string    `json:"formType"`
	Year     YearValue `json:"year"`
}

// Validate checks the raw fields and returns a validated request. It is a
// pure function of its input and the supplied clock; no subprocess is ever
// started on the rejection path.
func Validate(raw RawRequest, now time.Time) (*domain.FilingRequest, error) {
	if raw.Ticker == "" || raw.FormType == "" || raw.Year == "" {
		return nil, domain.ErrMissingFilingFields
	}
	if !tickerPattern.MatchString(raw.Ticker) {
		return nil, domain.ErrInvalidTicker
	}
	formType := domain.FormType(raw.FormType)
	if !formType.Valid() {
		return nil, domain.ErrInvalidFormType
	}
	year, err := strconv.Atoi(string(raw.Year))
	if err != nil {
		return nil, domain.ErrInvalidYear
	}
	if year < domain.MinFilingYear || year > now.Year() {
		return nil, domain.ErrInvalidYear
	}
	return &domain.FilingRequest{
		Ticker:   raw.Ticker,
		FormType: formType,
		Year:     year,
	}, nil
}
