package domain

import "encoding/json"

// FilingRequest is a validated request for one SEC filing.
type FilingRequest struct {
	Ticker   string
	FormType FormType
	Year     int
}

// TOCEntry is one table-of-contents row in a structured filing.
type TOCEntry struct {
	Item  string `json:"item"`
	Title string `json:"title"`
}

// FilingSection is the extracted body of one filing item.
type FilingSection struct {
	Text    string `json:"text"`
	RawHTML string `json:"raw_html,omitempty"`
}

// StructuredFiling is the item-keyed view of a parsed filing. On the wire the
// metadata fields, table_of_contents, and the item_* section keys all sit at
// the same JSON level, so marshaling is implemented by hand.
type StructuredFiling struct {
	CIK             string
	Company         string
	Ticker          string
	Form            string
	TableOfContents []TOCEntry
	Items           map[string]FilingSection
}

// structuredHeader covers the fixed keys of a structured filing document.
type structuredHeader struct {
	CIK             string     `json:"cik"`
	Company         string     `json:"company"`
	Ticker          string     `json:"ticker"`
	Form            string     `json:"form"`
	TableOfContents []TOCEntry `json:"table_of_contents"`
}

// fixedStructuredKeys are the top-level keys that are not item sections.
var fixedStructuredKeys = map[string]bool{
	"cik":               true,
	"company":           true,
	"ticker":            true,
	"form":              true,
	"table_of_contents": true,
}

// UnmarshalJSON decodes the fixed keys and folds every remaining item_* key
// into Items.
func (s *StructuredFiling) UnmarshalJSON(data []byte) error {
	var header structuredHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make(map[string]FilingSection)
	for key, value := range raw {
		if fixedStructuredKeys[key] || len(key) < 5 || key[:5] != "item_" {
			continue
		}
		var section FilingSection
		if err := json.Unmarshal(value, &section); err != nil {
			return err
		}
		items[key] = section
	}

	s.CIK = header.CIK
	s.Company = header.Company
	s.Ticker = header.Ticker
	s.Form = header.Form
	s.TableOfContents = header.TableOfContents
	s.Items = items
	return nil
}

// MarshalJSON emits the fixed keys and the item sections at one level.
func (s StructuredFiling) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Items)+5)
	out["cik"] = s.CIK
	out["company"] = s.Company
	out["ticker"] = s.Ticker
	out["form"] = s.Form
	toc := s.TableOfContents
	if toc == nil {
		toc = []TOCEntry{}
	}
	out["table_of_contents"] = toc
	for key, section := range s.Items {
		out[key] = section
	}
	return json.Marshal(out)
}

// FilingMetadata identifies the filing a chunk set was derived from.
type FilingMetadata struct {
	CIK     string `json:"cik"`
	Company string `json:"company"`
	Ticker  string `json:"ticker"`
	Form    string `json:"form"`
}

// Chunk is a token-bounded text segment of a filing, sized for downstream
// retrieval use.
type Chunk struct {
	ChunkID string `json:"chunk_id"`
	Section string `json:"section"`
	Text    string `json:"text"`
	Tokens  int    `json:"tokens"`
	Source  string `json:"source"`
}

// ChunkedFiling is the retrieval-oriented view of a parsed filing.
type ChunkedFiling struct {
	Metadata FilingMetadata `json:"metadata"`
	Chunks   []Chunk        `json:"chunks"`
}

// ParsedFiling is the full success payload of a filing parse: both views.
type ParsedFiling struct {
	Structured StructuredFiling `json:"structured"`
	Chunked    ChunkedFiling    `json:"chunked"`
}
