package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesJSON = `[
  {"login":{"uuid":"7a0eed16"},"name":{"first":"Ana","last":"Silva"},"picture":{"large":"https://randomuser.me/api/portraits/women/1.jpg"},"gender":"female","dob":{"age":31}},
  {"login":{"uuid":"b1c2d3e4"},"name":{"first":"Bruno","last":"Alves"},"picture":{"large":"https://randomuser.me/api/portraits/men/2.jpg"},"gender":"male","dob":{"age":45}}
]`

func TestHTTPProfileFetcher_FetchProfiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(profilesJSON))
	}))
	defer srv.Close()

	fetcher := services.NewHTTPProfileFetcher(srv.URL+"/users", time.Second)
	profiles, err := fetcher.FetchProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "7a0eed16", profiles[0].Login.UUID)
	assert.Equal(t, "Alves", profiles[1].Name.Last)
	assert.Equal(t, 45, profiles[1].Dob.Age)
}

func TestHTTPProfileFetcher_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := services.NewHTTPProfileFetcher(srv.URL, time.Second).FetchProfiles(context.Background())
	require.ErrorIs(t, err, directory.ErrSourceUnavailable)
}

func TestHTTPProfileFetcher_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := services.NewHTTPProfileFetcher(url, time.Second).FetchProfiles(context.Background())
	require.ErrorIs(t, err, directory.ErrSourceUnavailable)
}

func TestHTTPProfileFetcher_BadPayloadIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := services.NewHTTPProfileFetcher(srv.URL, time.Second).FetchProfiles(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, directory.ErrSourceUnavailable)
}

func TestFileProfileFetcher_FetchProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(profilesJSON), 0o600))

	profiles, err := (&services.FileProfileFetcher{Path: path}).FetchProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	_, err = (&services.FileProfileFetcher{Path: filepath.Join(t.TempDir(), "missing.json")}).FetchProfiles(context.Background())
	require.Error(t, err)
}
