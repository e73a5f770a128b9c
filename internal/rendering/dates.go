package rendering

import (
	"fmt"
	"time"
)

// PresentLabel is the fixed label shown as the end of an ongoing date range.
const PresentLabel = "至今"

// FormatMonth formats a "YYYY-MM" date string as its long-form Chinese
// month representation, e.g. "2023-06" becomes "2023年6月". Empty or
// unparsable input produces an empty string.
func FormatMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// FormatDateRange formats a start/end month pair. When current is true the
// end date is ignored and the range ends with the present label.
func FormatDateRange(start, end string, current bool) string {
	if current {
		return FormatMonth(start) + " - " + PresentLabel
	}
	return FormatMonth(start) + " - " + FormatMonth(end)
}
