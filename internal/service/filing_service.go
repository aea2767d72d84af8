package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"finverse/internal/config"
	"finverse/internal/domain"
	"finverse/internal/filing"
	"finverse/internal/port"
)

// FilingService defines the SEC filing parse and archive contract.
type FilingService interface {
	Parse(ctx context.Context, raw filing.RawRequest) (*domain.ParsedFiling, error)
	ArchiveURL(ctx context.Context, raw filing.RawRequest) (string, error)
	DeleteArchive(ctx context.Context, raw filing.RawRequest) error
}

type filingService struct {
	parser  port.FilingParser
	archive port.ObjectStorage // nil when the archive is disabled
	s3cfg   *config.S3Config
}

// NewFilingService creates a new FilingService. archive may be nil, in which
// case successful results are not archived.
func NewFilingService(parser port.FilingParser, archive port.ObjectStorage, s3cfg *config.S3Config) FilingService {
	return &filingService{parser: parser, archive: archive, s3cfg: s3cfg}
}

// Parse validates the raw request, runs the external parser, and archives the
// result. Validation failures never start a subprocess.
func (s *filingService) Parse(ctx context.Context, raw filing.RawRequest) (*domain.ParsedFiling, error) {
	req, err := filing.Validate(raw, time.Now())
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(ctx, *req)
	if err != nil {
		return nil, err
	}

	s.archiveResult(ctx, *req, parsed)
	return parsed, nil
}

// ArchiveURL returns a presigned download link for a previously archived
// parse result.
func (s *filingService) ArchiveURL(ctx context.Context, raw filing.RawRequest) (string, error) {
	req, err := filing.Validate(raw, time.Now())
	if err != nil {
		return "", err
	}
	if !s.archiveEnabled() {
		return "", domain.ErrArchiveDisabled
	}
	return s.archive.GetPresignedURL(ctx, s.s3cfg.Bucket, archiveKey(*req), s.s3cfg.PresignExpiry)
}

// DeleteArchive removes an archived parse result from the bucket.
func (s *filingService) DeleteArchive(ctx context.Context, raw filing.RawRequest) error {
	req, err := filing.Validate(raw, time.Now())
	if err != nil {
		return err
	}
	if !s.archiveEnabled() {
		return domain.ErrArchiveDisabled
	}
	return s.archive.Delete(ctx, s.s3cfg.Bucket, archiveKey(*req))
}

func (s *filingService) archiveEnabled() bool {
	return s.archive != nil && s.s3cfg != nil && s.s3cfg.Enabled()
}

func archiveKey(req domain.FilingRequest) string {
	return fmt.Sprintf("filings/%s/%s/%d.json", req.Ticker, req.FormType, req.Year)
}

// archiveResult uploads the parse result to the configured bucket.
// Best-effort: archive failures are logged and never fail the request.
func (s *filingService) archiveResult(ctx context.Context, req domain.FilingRequest, parsed *domain.ParsedFiling) {
	if !s.archiveEnabled() {
		return
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		log.Printf("filingService: marshaling archive payload: %v", err)
		return
	}

	key := archiveKey(req)
	_, err = s.archive.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: "application/json",
	})
	if err != nil {
		log.Printf("filingService: archiving %s: %v", key, err)
		return
	}
	log.Printf("filingService: archived %s", key)
}
