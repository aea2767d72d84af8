package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finverse/internal/config"
	"finverse/internal/domain"
	"finverse/internal/filing"
	"finverse/internal/port"
	"finverse/internal/service"
	"finverse/mocks"
)

var validRaw = filing.RawRequest{Ticker: "AAPL", FormType: "10-K", Year: "2023"}

func sampleParsed() *domain.ParsedFiling {
	return &domain.ParsedFiling{
		Structured: domain.StructuredFiling{
			CIK:     "0000320193",
			Company: "Apple Inc.",
			Ticker:  "AAPL",
			Form:    "10-K",
			Items: map[string]domain.FilingSection{
				"item_1": {Text: "Business overview."},
			},
		},
		Chunked: domain.ChunkedFiling{
			Metadata: domain.FilingMetadata{Ticker: "AAPL", Form: "10-K"},
			Chunks: []domain.Chunk{
				{ChunkID: "item_1_0", Section: "item_1", Text: "Business overview.", Tokens: 3, Source: "10-K"},
			},
		},
	}
}

func TestFilingService_Parse_Success(t *testing.T) {
	parser := new(mocks.MockFilingParser)
	svc := service.NewFilingService(parser, nil, nil)

	parser.On("Parse", mock.Anything, domain.FilingRequest{
		Ticker:   "AAPL",
		FormType: domain.Form10K,
		Year:     2023,
	}).Return(sampleParsed(), nil)

	parsed, err := svc.Parse(context.Background(), validRaw)

	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", parsed.Structured.Company)
	parser.AssertExpectations(t)
}

func TestFilingService_Parse_ValidationFailureSkipsParser(t *testing.T) {
	parser := new(mocks.MockFilingParser)
	svc := service.NewFilingService(parser, nil, nil)

	_, err := svc.Parse(context.Background(), filing.RawRequest{
		Ticker:   "aapl",
		FormType: "10-K",
		Year:     "2023",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTicker)
	parser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestFilingService_Parse_ParserError(t *testing.T) {
	parser := new(mocks.MockFilingParser)
	svc := service.NewFilingService(parser, nil, nil)

	parser.On("Parse", mock.Anything, mock.Anything).
		Return(nil, domain.ErrParseTimeout)

	_, err := svc.Parse(context.Background(), validRaw)

	assert.ErrorIs(t, err, domain.ErrParseTimeout)
}

func TestFilingService_Parse_ArchivesResult(t *testing.T) {
	parser := new(mocks.MockFilingParser)
	archive := new(mocks.MockObjectStorage)
	s3cfg := &config.S3Config{Bucket: "finverse-filings", Region: "us-east-1"}
	svc := service.NewFilingService(parser, archive, s3cfg)

	parser.On("Parse", mock.Anything, mock.Anything).Return(sampleParsed(), nil)
	archive.On("Upload", mock.Anything, mock.MatchedBy(func(input port.UploadInput) bool {
		return input.Bucket == "finverse-filings" &&
			input.Key == "filings/AAPL/10-K/2023.json" &&
			input.ContentType == "application/json"
	})).Return(&port.UploadOutput{Location: "s3://finverse-filings/filings/AAPL/10-K/2023.json"}, nil)

	_, err := svc.Parse(context.Background(), validRaw)

	require.NoError(t, err)
	archive.AssertExpectations(t)
}

func TestFilingService_ArchiveURL(t *testing.T) {
	archive := new(mocks.MockObjectStorage)
	s3cfg := &config.S3Config{Bucket: "finverse-filings", PresignExpiry: 3600}
	svc := service.NewFilingService(new(mocks.MockFilingParser), archive, s3cfg)

	archive.On("GetPresignedURL", mock.Anything, "finverse-filings", "filings/AAPL/10-K/2023.json", int64(3600)).
		Return("https://finverse-filings.s3.amazonaws.com/filings/AAPL/10-K/2023.json?X-Amz-Signature=abc", nil)

	url, err := svc.ArchiveURL(context.Background(), validRaw)

	require.NoError(t, err)
	assert.Contains(t, url, "filings/AAPL/10-K/2023.json")
	archive.AssertExpectations(t)
}

func TestFilingService_ArchiveURL_Disabled(t *testing.T) {
	svc := service.NewFilingService(new(mocks.MockFilingParser), nil, nil)

	_, err := svc.ArchiveURL(context.Background(), validRaw)

	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
}

func TestFilingService_ArchiveURL_ValidationError(t *testing.T) {
	archive := new(mocks.MockObjectStorage)
	s3cfg := &config.S3Config{Bucket: "finverse-filings", PresignExpiry: 3600}
	svc := service.NewFilingService(new(mocks.MockFilingParser), archive, s3cfg)

	_, err := svc.ArchiveURL(context.Background(), filing.RawRequest{
		Ticker:   "aapl",
		FormType: "10-K",
		Year:     "2023",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTicker)
	archive.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFilingService_DeleteArchive(t *testing.T) {
	archive := new(mocks.MockObjectStorage)
	s3cfg := &config.S3Config{Bucket: "finverse-filings"}
	svc := service.NewFilingService(new(mocks.MockFilingParser), archive, s3cfg)

	archive.On("Delete", mock.Anything, "finverse-filings", "filings/AAPL/10-K/2023.json").
		Return(nil)

	err := svc.DeleteArchive(context.Background(), validRaw)

	require.NoError(t, err)
	archive.AssertExpectations(t)
}

func TestFilingService_DeleteArchive_Disabled(t *testing.T) {
	svc := service.NewFilingService(new(mocks.MockFilingParser), nil, nil)

	err := svc.DeleteArchive(context.Background(), validRaw)

	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
}

func TestFilingService_Parse_ArchiveFailureDoesNotFailRequest(t *testing.T) {
	parser := new(mocks.MockFilingParser)
	archive := new(mocks.MockObjectStorage)
	s3cfg := &config.S3Config{Bucket: "finverse-filings"}
	svc := service.NewFilingService(parser, archive, s3cfg)

	parser.On("Parse", mock.Anything, mock.Anything).Return(sampleParsed(), nil)
	archive.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	parsed, err := svc.Parse(context.Background(), validRaw)

	require.NoError(t, err)
	assert.NotNil(t, parsed)
}
