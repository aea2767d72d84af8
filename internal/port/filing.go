package port

import (
	"context"

	"finverse/internal/domain"
)

// FilingParser abstracts the external SEC filing parser: given a validated
// request it produces both views of the filing or an error from the
// taxonomy (ErrProcessFailed, ErrParseTimeout, ErrMalformedOutput).
type FilingParser interface {
	Parse(ctx context.Context, req domain.FilingRequest) (*domain.ParsedFiling, error)
}
