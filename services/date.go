package services

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// ShortDateLayout is DD/MM/YY.
	ShortDateLayout = "02/01/06"
	// ISODateLayout is YYYY-MM-DD.
	ISODateLayout = "2006-01-02"
)

// DateNormalizer rewrites user-entered dates in two stages. Stage one accepts
// any common textual date and writes it back as DD/MM/YY. Only when stage one
// fails, stage two parses strict DD/MM/YY and writes it back as YYYY-MM-DD.
// Upstream data entry is inconsistent, so the precedence is kept as is.
// Surrounding whitespace is ignored.
type DateNormalizer struct {
	Loose func(string) (time.Time, error)
}

func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{Loose: func(value string) (time.Time, error) {
		// Slash dates are read month-first, and day-first when the first
		// number cannot be a month.
		return dateparse.ParseAny(value, dateparse.RetryAmbiguousDateWithSwap(true))
	}}
}

func (n *DateNormalizer) Normalize(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if t, err := n.Loose(trimmed); err == nil {
		return t.Format(ShortDateLayout), nil
	}

	t, err := time.Parse(ShortDateLayout, trimmed)
	if err != nil {
		return "", &InvalidDateError{Field: field, Value: value}
	}
	return t.Format(ISODateLayout), nil
}
