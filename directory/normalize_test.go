package directory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"golang.org/x/text/language"
)

func TestNormalize_MapsFields(t *testing.T) {
	raws := []model.RawProfile{rawProfile("u-1", "Ana", "Silva", "female", 31)}

	got, err := directory.Normalize(raws, language.BrazilianPortuguese)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "u-1", got[0].ID)
	assert.Equal(t, "Ana Silva", got[0].DisplayName)
	assert.Equal(t, "ana silva", got[0].SearchKey)
	assert.Equal(t, "https://randomuser.me/api/portraits/u-1.jpg", got[0].AvatarURL)
	assert.Equal(t, "female", got[0].Gender)
	assert.Equal(t, 31, got[0].Age)
}

func TestNormalize_SortsWithLocaleCollation(t *testing.T) {
	raws := []model.RawProfile{
		rawProfile("1", "Zé", "Carvalho", "male", 40),
		rawProfile("2", "Bruno", "Alves", "male", 22),
		rawProfile("3", "Álvaro", "Dias", "male", 57),
		rawProfile("4", "Érica", "Moura", "female", 35),
		rawProfile("5", "Camila", "Rocha", "female", 29),
	}

	got, err := directory.Normalize(raws, language.BrazilianPortuguese)
	require.NoError(t, err)

	// byte order would place the accented names after "Zé"
	assert.Equal(t, []string{
		"Álvaro Dias",
		"Bruno Alves",
		"Camila Rocha",
		"Érica Moura",
		"Zé Carvalho",
	}, names(got))
}

func TestNormalize_Properties(t *testing.T) {
	raws := []model.RawProfile{
		rawProfile("1", "Maria", "Souza", "female", 50),
		rawProfile("2", "maria", "souza", "female", 51),
		rawProfile("3", "João", "Pereira", "male", 18),
		rawProfile("4", "Ígor", "Lima", "male", 33),
		rawProfile("5", "Lúcia", "Nunes", "female", 64),
	}

	got, err := directory.Normalize(raws, language.BrazilianPortuguese)
	require.NoError(t, err)
	require.Len(t, got, len(raws))

	sorted := append([]model.UserRecord(nil), got...)
	directory.SortByName(sorted, language.BrazilianPortuguese)
	assert.Equal(t, names(sorted), names(got), "output must already be in collation order")

	for _, r := range got {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, strings.ToLower(r.DisplayName), r.SearchKey)
	}
}

func TestNormalize_SkipsMalformedRecords(t *testing.T) {
	raws := []model.RawProfile{
		rawProfile("", "No", "Id", "male", 20),
		rawProfile("ok", "Ana", "Silva", "female", 31),
		rawProfile("no-last", "Solo", "", "male", 20),
		rawProfile("neg", "Bad", "Age", "male", -1),
	}

	got, err := directory.Normalize(raws, language.BrazilianPortuguese)
	require.Error(t, err)
	assert.True(t, errors.Is(err, directory.ErrMalformedRecord))
	assert.Len(t, multierr.Errors(err), 3)

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestDecodeProfiles(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{
			name:    "array",
			payload: `[{"login":{"uuid":"a"},"name":{"first":"Ana","last":"Silva"},"picture":{"large":"x"},"gender":"female","dob":{"age":31}}]`,
			want:    1,
		},
		{
			name:    "results envelope",
			payload: ` {"results":[{"login":{"uuid":"a"}},{"login":{"uuid":"b"}}],"info":{"seed":"abc"}}`,
			want:    2,
		},
		{name: "empty array", payload: `[]`, want: 0},
		{name: "empty payload", payload: "  ", wantErr: true},
		{name: "not json", payload: `<html>`, wantErr: true},
		{name: "broken array", payload: `[{"login":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := directory.DecodeProfiles([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}
