package filing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finverse/internal/domain"
	"finverse/internal/filing"
)

const parserOutput = `{
  "structured": {
    "cik": "0000320193",
    "company": "Apple Inc.",
    "ticker": "AAPL",
    "form": "10-K",
    "table_of_contents": [
      {"item": "item_1", "title": "Business"},
      {"item": "item_1a", "title": "Risk Factors"}
    ],
    "item_1": {"text": "Apple designs smartphones."},
    "item_1a": {"text": "Competition is intense.", "raw_html": "<p>Competition is intense.</p>"}
  },
  "chunked": {
    "metadata": {"cik": "0000320193", "company": "Apple Inc.", "ticker": "AAPL", "form": "10-K"},
    "chunks": [
      {"chunk_id": "item_1_0", "section": "item_1", "text": "Apple designs smartphones.", "tokens": 5, "source": "10-K"}
    ]
  }
}`

func TestTranslate_Success(t *testing.T) {
	outcome := filing.Outcome{Kind: filing.OutcomeSuccess, Stdout: parserOutput}

	parsed, err := filing.Translate(outcome, filing.DefaultTimeout)

	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", parsed.Structured.Company)
	assert.Len(t, parsed.Structured.TableOfContents, 2)
	assert.Len(t, parsed.Structured.Items, 2)
	assert.Equal(t, "Apple designs smartphones.", parsed.Structured.Items["item_1"].Text)
	assert.Equal(t, "<p>Competition is intense.</p>", parsed.Structured.Items["item_1a"].RawHTML)

	require.Len(t, parsed.Chunked.Chunks, 1)
	assert.Equal(t, "item_1_0", parsed.Chunked.Chunks[0].ChunkID)
	assert.Equal(t, 5, parsed.Chunked.Chunks[0].Tokens)
	assert.Equal(t, "AAPL", parsed.Chunked.Metadata.Ticker)
}

func TestTranslate_ProcessFailure(t *testing.T) {
	outcome := filing.Outcome{
		Kind:     filing.OutcomeProcessFailure,
		Stderr:   "Traceback: no filings found for AAPL\n",
		ExitCode: 3,
	}

	_, err := filing.Translate(outcome, filing.DefaultTimeout)

	require.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.Contains(t, err.Error(), "with code 3")
	assert.Contains(t, err.Error(), "no filings found for AAPL")
}

func TestTranslate_Timeout(t *testing.T) {
	outcome := filing.Outcome{Kind: filing.OutcomeTimedOut}

	_, err := filing.Translate(outcome, 5*time.Minute)

	require.ErrorIs(t, err, domain.ErrParseTimeout)
	assert.Contains(t, err.Error(), "timed out after 5 minutes")
}

func TestTranslate_Timeout_SubMinute(t *testing.T) {
	outcome := filing.Outcome{Kind: filing.OutcomeTimedOut}

	_, err := filing.Translate(outcome, 30*time.Second)

	require.ErrorIs(t, err, domain.ErrParseTimeout)
	assert.Contains(t, err.Error(), "timed out after 30s")
}

func TestTranslate_Timeout_SingleMinute(t *testing.T) {
	outcome := filing.Outcome{Kind: filing.OutcomeTimedOut}

	_, err := filing.Translate(outcome, time.Minute)

	require.ErrorIs(t, err, domain.ErrParseTimeout)
	assert.Contains(t, err.Error(), "timed out after 1 minute")
}

func TestTranslate_MalformedJSON(t *testing.T) {
	outcome := filing.Outcome{Kind: filing.OutcomeSuccess, Stdout: "not json at all"}

	_, err := filing.Translate(outcome, filing.DefaultTimeout)

	assert.ErrorIs(t, err, domain.ErrMalformedOutput)
}

func TestTranslate_MissingViews(t *testing.T) {
	cases := []string{
		`{"structured": {"cik": "1"}}`,
		`{"chunked": {"metadata": {}, "chunks": []}}`,
		`{}`,
	}
	for _, out := range cases {
		_, err := filing.Translate(filing.Outcome{Kind: filing.OutcomeSuccess, Stdout: out}, filing.DefaultTimeout)
		assert.ErrorIs(t, err, domain.ErrMalformedOutput, "output %q", out)
	}
}

func TestTranslate_MisshapenView(t *testing.T) {
	out := `{"structured": "not an object", "chunked": {"metadata": {}, "chunks": []}}`

	_, err := filing.Translate(filing.Outcome{Kind: filing.OutcomeSuccess, Stdout: out}, filing.DefaultTimeout)

	assert.ErrorIs(t, err, domain.ErrMalformedOutput)
}
