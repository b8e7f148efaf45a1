package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ortelius/userdir-backend/model"
	"go.uber.org/multierr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Normalize converts raw profiles into directory records sorted by display name
// using the collation rules of tag. Malformed profiles are left out; the returned
// error joins one ErrMalformedRecord per skipped profile and is nil when none were skipped.
func Normalize(raws []model.RawProfile, tag language.Tag) ([]model.UserRecord, error) {
	records := make([]model.UserRecord, 0, len(raws))
	var skipped error

	for i, raw := range raws {
		record, err := normalizeProfile(raw)
		if err != nil {
			skipped = multierr.Append(skipped, fmt.Errorf("profile %d: %w", i, err))
			continue
		}
		records = append(records, record)
	}

	SortByName(records, tag)
	return records, skipped
}

func normalizeProfile(raw model.RawProfile) (model.UserRecord, error) {
	if strings.TrimSpace(raw.Login.UUID) == "" {
		return model.UserRecord{}, fmt.Errorf("%w: missing login.uuid", ErrMalformedRecord)
	}
	if strings.TrimSpace(raw.Name.First) == "" || strings.TrimSpace(raw.Name.Last) == "" {
		return model.UserRecord{}, fmt.Errorf("%w: missing name for %s", ErrMalformedRecord, raw.Login.UUID)
	}
	if raw.Dob.Age < 0 {
		return model.UserRecord{}, fmt.Errorf("%w: negative age %d for %s", ErrMalformedRecord, raw.Dob.Age, raw.Login.UUID)
	}

	return model.NewUserRecord(
		raw.Login.UUID,
		raw.Name.First+" "+raw.Name.Last,
		raw.Picture.Large,
		raw.Gender,
		raw.Dob.Age,
	), nil
}

// SortByName sorts records in place by display name, locale aware. Equal names keep their order.
func SortByName(records []model.UserRecord, tag language.Tag) {
	// a Collator keeps internal buffers, one per sort
	collator := collate.New(tag)
	sort.SliceStable(records, func(i, j int) bool {
		return collator.CompareString(records[i].DisplayName, records[j].DisplayName) < 0
	})
}

// DecodeProfiles parses a profile payload. Both a bare JSON array and an object
// with a "results" array are accepted.
func DecodeProfiles(data []byte) ([]model.RawProfile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode profiles: empty payload")
	}

	switch trimmed[0] {
	case '[':
		var profiles []model.RawProfile
		if err := json.Unmarshal(trimmed, &profiles); err != nil {
			return nil, fmt.Errorf("decode profiles: %w", err)
		}
		return profiles, nil
	case '{':
		var envelope model.ProfileEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode profiles: %w", err)
		}
		return envelope.Results, nil
	default:
		return nil, fmt.Errorf("decode profiles: unexpected payload starting with %q", trimmed[0])
	}
}
