package directory

import "github.com/ortelius/userdir-backend/model"

// Aggregate computes gender counts and the age sum and average of records.
// The average is 0 for an empty input and is rounded half-up to 2 decimals.
func Aggregate(records []model.UserRecord) model.Statistics {
	var stats model.Statistics

	for _, record := range records {
		switch {
		case record.IsMale():
			stats.MaleCount++
		case record.IsFemale():
			stats.FemaleCount++
		}
		stats.AgeSum += record.Age
	}

	if len(records) == 0 {
		return stats
	}

	stats.AgeAverage = float64(averageCents(stats.AgeSum, len(records))) / 100
	return stats
}

// averageCents returns sum/n in hundredths, rounded half-up on the exact quotient.
// Ages are non-negative, so integer division truncates toward the lower neighbor.
func averageCents(sum, n int) int {
	return (2*100*sum + n) / (2 * n)
}
