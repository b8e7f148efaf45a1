// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"github.com/ortelius/userdir-backend/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale matches the audience of the generated profiles
var DefaultLocale = language.BrazilianPortuguese

// NumberFormatter renders numbers with the grouping and decimal separators of one locale
type NumberFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewNumberFormatter creates a formatter for tag
func NewNumberFormatter(tag language.Tag) *NumberFormatter {
	return &NumberFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// ParseLocale parses a BCP 47 tag, falling back to DefaultLocale for an empty value
func ParseLocale(value string) (language.Tag, error) {
	if value == "" {
		return DefaultLocale, nil
	}
	return language.Parse(value)
}

// Locale returns the formatter's language tag as a string
func (f *NumberFormatter) Locale() string {
	return f.tag.String()
}

// Tag returns the formatter's language tag
func (f *NumberFormatter) Tag() language.Tag {
	return f.tag
}

// Int formats an integer with thousands grouping, e.g. 12.345 for pt-BR
func (f *NumberFormatter) Int(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Average formats a value with exactly two fraction digits, e.g. 25,00 for pt-BR
func (f *NumberFormatter) Average(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

// FormatStatistics renders every statistic for display
func (f *NumberFormatter) FormatStatistics(stats model.Statistics) model.FormattedStatistics {
	return model.FormattedStatistics{
		MaleCount:   f.Int(stats.MaleCount),
		FemaleCount: f.Int(stats.FemaleCount),
		AgeSum:      f.Int(stats.AgeSum),
		AgeAverage:  f.Average(stats.AgeAverage),
	}
}
