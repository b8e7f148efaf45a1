package directory_test

import (
	"testing"

	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		records []model.UserRecord
		want    model.Statistics
	}{
		{
			name:    "empty",
			records: nil,
			want:    model.Statistics{},
		},
		{
			name: "one of each",
			records: []model.UserRecord{
				model.NewUserRecord("1", "Ana Silva", "", "female", 30),
				model.NewUserRecord("2", "Bruno Alves", "", "male", 20),
			},
			want: model.Statistics{MaleCount: 1, FemaleCount: 1, AgeSum: 50, AgeAverage: 25},
		},
		{
			name: "other genders only add to the age sum",
			records: []model.UserRecord{
				model.NewUserRecord("1", "Ana Silva", "", "female", 30),
				model.NewUserRecord("2", "Sam Reis", "", "nonbinary", 42),
			},
			want: model.Statistics{FemaleCount: 1, AgeSum: 72, AgeAverage: 36},
		},
		{
			name: "average rounded to two decimals",
			records: []model.UserRecord{
				model.NewUserRecord("1", "A", "", "male", 20),
				model.NewUserRecord("2", "B", "", "male", 20),
				model.NewUserRecord("3", "C", "", "male", 10),
			},
			want: model.Statistics{MaleCount: 3, AgeSum: 50, AgeAverage: 16.67},
		},
		{
			name:    "exact tie at the third decimal rounds up",
			records: tieRecords(),
			want:    model.Statistics{MaleCount: 200, AgeSum: 201, AgeAverage: 1.01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directory.Aggregate(tt.records))
		})
	}
}

// 200 records summing to 201 years average exactly 1.005
func tieRecords() []model.UserRecord {
	recs := make([]model.UserRecord, 0, 200)
	recs = append(recs, model.NewUserRecord("x", "X", "", "male", 2))
	for i := 1; i < 200; i++ {
		recs = append(recs, model.NewUserRecord("z", "Z", "", "male", 1))
	}
	return recs
}

func TestAggregate_HalfUpAtThirdDecimal(t *testing.T) {
	// 1 / 8 = 0.125 is exact in binary, so the tie is real
	recs := []model.UserRecord{model.NewUserRecord("x", "X", "", "male", 1)}
	for i := 0; i < 7; i++ {
		recs = append(recs, model.NewUserRecord("z", "Z", "", "male", 0))
	}

	got := directory.Aggregate(recs)
	assert.Equal(t, 1, got.AgeSum)
	assert.Equal(t, 0.13, got.AgeAverage)
}
