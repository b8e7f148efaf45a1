// Package model provides data models for the user directory.
package model

import "strings"

// Gender labels the aggregator counts. Other source values are kept as-is.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// UserRecord represents one entry in the directory
type UserRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	SearchKey   string `json:"-"` // lower-cased DisplayName, matching only
	AvatarURL   string `json:"picture"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
}

// NewUserRecord builds a record and derives its search key from the display name
func NewUserRecord(id, displayName, avatarURL, gender string, age int) UserRecord {
	return UserRecord{
		ID:          id,
		DisplayName: displayName,
		SearchKey:   strings.ToLower(displayName),
		AvatarURL:   avatarURL,
		Gender:      gender,
		Age:         age,
	}
}

// Matches reports whether the record's search key contains an already normalized query
func (u UserRecord) Matches(normalizedQuery string) bool {
	return strings.Contains(u.SearchKey, normalizedQuery)
}

// IsMale returns true if the record is counted as male
func (u UserRecord) IsMale() bool {
	return u.Gender == GenderMale
}

// IsFemale returns true if the record is counted as female
func (u UserRecord) IsFemale() bool {
	return u.Gender == GenderFemale
}
