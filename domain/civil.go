package domain

import "time"

// Civil date/time layouts used across the API and storage.
// The service runs in a single implicit zone, so values are kept as
// validated wall-clock strings rather than instants.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidDate reports whether value is a well-formed civil date.
// The length check keeps the format fixed-width; time.Parse alone
// accepts single-digit fields.
func ValidDate(value string) bool {
	if len(value) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ValidTime reports whether value is a well-formed wall-clock time.
func ValidTime(value string) bool {
	if len(value) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, value)
	return err == nil
}
