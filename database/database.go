// Package database - Reads directory profiles from ArangoDB
package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
	"go.uber.org/zap"
)

// Config holds the connection settings
type Config struct {
	URL        string
	User       string
	Pass       string
	Database   string
	Collection string
}

// DBConnection is the structure that defines the database and the profile collection
type DBConnection struct {
	Database   arangodb.Database
	Collection arangodb.Collection
}

// profilesQuery returns every raw profile document; @@col is bound to the collection name
const profilesQuery = `FOR p IN @@col RETURN p`

func dbConnectionConfig(endpoint connection.Endpoint, dbuser string, dbpass string) connection.HttpConfiguration {
	return connection.HttpConfiguration{
		Authentication: connection.NewBasicAuth(dbuser, dbpass),
		Endpoint:       endpoint,
		ContentType:    connection.ApplicationJSON,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // #nosec G402
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 90 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Connect opens the configured database and collection. Both must already exist;
// the directory never creates or writes documents.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger) (DBConnection, error) {
	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttpConnection(dbConnectionConfig(endpoint, cfg.User, cfg.Pass))
	client := arangodb.NewClient(conn)

	versionInfo, err := client.Version(ctx)
	if err != nil {
		return DBConnection{}, fmt.Errorf("%w: arangodb version: %w", directory.ErrSourceUnavailable, err)
	}
	logger.Sugar().Infof("Database has version '%s' and license '%s'", versionInfo.Version, versionInfo.License)

	var dbOptions arangodb.GetDatabaseOptions
	db, err := client.GetDatabase(ctx, cfg.Database, &dbOptions)
	if err != nil {
		return DBConnection{}, fmt.Errorf("failed to get database %s: %w", cfg.Database, err)
	}

	exists, err := db.CollectionExists(ctx, cfg.Collection)
	if err != nil {
		return DBConnection{}, fmt.Errorf("%w: collection lookup: %w", directory.ErrSourceUnavailable, err)
	}
	if !exists {
		return DBConnection{}, fmt.Errorf("collection %s does not exist in %s", cfg.Collection, cfg.Database)
	}

	var colOptions arangodb.GetCollectionOptions
	col, err := db.GetCollection(ctx, cfg.Collection, &colOptions)
	if err != nil {
		return DBConnection{}, fmt.Errorf("failed to use collection: %w", err)
	}

	return DBConnection{Database: db, Collection: col}, nil
}

// ArangoProfileFetcher implements directory.ProfileSource over an ArangoDB collection.
// The connection is opened on the first fetch so the loader's backoff covers it.
type ArangoProfileFetcher struct {
	cfg    Config
	logger *zap.Logger

	mu   sync.Mutex
	conn *DBConnection
}

// NewArangoProfileFetcher creates a fetcher for cfg
func NewArangoProfileFetcher(cfg Config, logger *zap.Logger) (*ArangoProfileFetcher, error) {
	if cfg.URL == "" || cfg.Database == "" || cfg.Collection == "" {
		return nil, fmt.Errorf("arangodb url, database and collection are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArangoProfileFetcher{cfg: cfg, logger: logger}, nil
}

func (f *ArangoProfileFetcher) connection(ctx context.Context) (DBConnection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.conn != nil {
		return *f.conn, nil
	}

	conn, err := Connect(ctx, f.cfg, f.logger)
	if err != nil {
		return DBConnection{}, err
	}
	f.conn = &conn
	return conn, nil
}

// FetchProfiles reads every document of the collection as a raw profile
func (f *ArangoProfileFetcher) FetchProfiles(ctx context.Context) ([]model.RawProfile, error) {
	conn, err := f.connection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := conn.Database.Query(ctx, profilesQuery, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"@col": f.cfg.Collection},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: query profiles: %w", directory.ErrSourceUnavailable, err)
	}
	defer cursor.Close()

	var profiles []model.RawProfile
	for cursor.HasMore() {
		var profile model.RawProfile
		if _, err := cursor.ReadDocument(ctx, &profile); err != nil {
			return nil, fmt.Errorf("%w: read profile: %w", directory.ErrSourceUnavailable, err)
		}
		profiles = append(profiles, profile)
	}

	f.logger.Debug("Read profiles from ArangoDB",
		zap.String("collection", f.cfg.Collection),
		zap.Int("count", len(profiles)))
	return profiles, nil
}

// Ensure compile-time interface check
var _ directory.ProfileSource = (*ArangoProfileFetcher)(nil)
