package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrPersonaNotFound      = errors.New("persona not found")
	ErrMissingFilingFields  = errors.New("missing required filing fields")
	ErrInvalidTicker        = errors.New("invalid ticker format")
	ErrInvalidFormType      = errors.New("invalid form type")
	ErrInvalidYear          = errors.New("invalid year")
	ErrMissingPersonaFields = errors.New("missing persona selection fields")
	ErrMissingChatFields    = errors.New("missing chat fields")
	ErrProcessFailed        = errors.New("filing parser process failed")
	ErrParseTimeout         = errors.New("filing parser timed out")
	ErrMalformedOutput      = errors.New("filing parser produced malformed output")
	ErrChatNotConfigured    = errors.New("chat API key not configured")
	ErrChatUpstream         = errors.New("chat upstream request failed")
	ErrInvalidExportFormat  = errors.New("invalid export format")
	ErrArchiveDisabled      = errors.New("filing archive not configured")
)
