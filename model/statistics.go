// Package model defines the aggregate statistics computed over a record subset.
package model

// Statistics summarizes a set of records
type Statistics struct {
	MaleCount   int     `json:"male_count"`
	FemaleCount int     `json:"female_count"`
	AgeSum      int     `json:"age_sum"`
	AgeAverage  float64 `json:"age_average"` // rounded to 2 decimals
}

// FormattedStatistics holds the locale-formatted display strings of a Statistics value
type FormattedStatistics struct {
	MaleCount   string `json:"male_count"`
	FemaleCount string `json:"female_count"`
	AgeSum      string `json:"age_sum"`
	AgeAverage  string `json:"age_average"`
}
