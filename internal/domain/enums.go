package domain

// FormType represents a supported SEC filing form type.
type FormType string

const (
	Form10K FormType = "10-K"
	Form10Q FormType = "10-Q"
	Form8K  FormType = "8-K"
)

// ValidFormTypes is the set of form types the parser accepts.
var ValidFormTypes = map[FormType]bool{
	Form10K: true,
	Form10Q: true,
	Form8K:  true,
}

// Valid reports whether the form type is one of the supported kinds.
func (f FormType) Valid() bool {
	return ValidFormTypes[f]
}

// MinFilingYear is the first year EDGAR electronic filings are available.
const MinFilingYear = 1993

// ExportFormat selects the download format for chunk exports.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)
