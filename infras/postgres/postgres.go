package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"staybook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxIdleTime    = 5 * time.Minute
)

var errNotConnected = errors.New("database not connected")

// Connection is a read/write pair; both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	username string
	password string
	host     string
	port     string
	name     string
	sslMode  string
}

func (e endpoint) dsn(extra url.Values) string {
	u := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(e.username, e.password),
		Host:   net.JoinHostPort(e.host, e.port),
		Path:   "/" + e.name,
	}

	query := url.Values{}
	for key, values := range extra {
		query[key] = values
	}

	if e.sslMode != "" {
		query.Set("sslmode", e.sslMode)
	}

	u.RawQuery = query.Encode()

	return u.String()
}

func databaseName(cfg *config.Config, name string) string {
	return cfg.DB.Postgres.Prefix + name
}

func writeEndpoint(cfg *config.Config) endpoint {
	w := cfg.DB.Postgres.Write

	return endpoint{"write", w.Username, w.Password, w.Host, w.Port, databaseName(cfg, w.Name), w.SSLMode}
}

func readEndpoint(cfg *config.Config) endpoint {
	r := cfg.DB.Postgres.Read

	return endpoint{"read", r.Username, r.Password, r.Host, r.Port, databaseName(cfg, r.Name), r.SSLMode}
}

// WriteDSN is the connection string of the write endpoint with extra query parameters.
func WriteDSN(cfg *config.Config, extra url.Values) string {
	return writeEndpoint(cfg).dsn(extra)
}

// New connects both endpoints, retrying each according to the configured policy.
// A failed endpoint is left nil and reported by Ping.
func New(cfg *config.Config) *Connection {
	retries := max(cfg.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	return &Connection{
		Read:  connect(readEndpoint(cfg), retries, wait),
		Write: connect(writeEndpoint(cfg), retries, wait),
	}
}

func connect(e endpoint, retries int, wait time.Duration) *sqlx.DB {
	for attempt := 1; attempt <= retries; attempt++ {
		db, err := sqlx.Connect(driverName, e.dsn(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			log.Info().Str("role", e.role).Str("host", e.host).Str("database", e.name).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", e.role).
			Str("host", e.host).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		if attempt < retries {
			time.Sleep(wait)
		}
	}

	return nil
}

// Ping reports whether both endpoints answer.
func (c *Connection) Ping(ctx context.Context) error {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			return errNotConnected
		}

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
	}

	return nil
}

func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}
