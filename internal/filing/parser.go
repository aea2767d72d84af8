package filing

import (
	"context"

	"finverse/internal/config"
	"finverse/internal/domain"
)

// Parser implements port.FilingParser by running the external script under
// the Runner and translating its outcome.
type Parser struct {
	runner *Runner
}

// NewParser creates a subprocess-backed filing parser.
func NewParser(cfg *config.ParserConfig) *Parser {
	return &Parser{runner: NewRunner(cfg)}
}

func (p *Parser) Parse(ctx context.Context, req domain.FilingRequest) (*domain.ParsedFiling, error) {
	outcome, err := p.runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	return Translate(outcome, p.runner.Timeout())
}
