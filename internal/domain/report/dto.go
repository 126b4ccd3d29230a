package report

import (
	"github.com/raminfosys/erp-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Placeholder replaces username and department for users that no longer exist.
const Placeholder = "N/A"

// DefaultLabel names a full export.
const DefaultLabel = "Full"

// Export is a ready-to-download report file.
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}

// AttendanceExportRequest selects what goes into an attendance report.
// An empty Month exports everything.
type AttendanceExportRequest struct {
	Month  string `json:"month,omitempty"`
	Format Format `json:"format,omitempty"`
}

func (r *AttendanceExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" && !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.Format == "" {
		r.Format = FormatCSV
	} else if !validator.IsInSlice(string(r.Format), []string{string(FormatCSV), string(FormatXLSX)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: csv, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
