package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"hoteladmin/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var ErrNotConnected = errors.New("database connection is not established")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. A side that stays unreachable after
// MaxRetry attempts is left nil, and Ping reports it.
func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(config, "read", config.DB.Postgres.Read),
		Write: connect(config, "write", config.DB.Postgres.Write),
	}
}

// NewFromDB wraps a single handle as both the read and the write side.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{
		Read:  db,
		Write: db,
	}
}

// Transaction runs fn inside a transaction on the write connection. The
// transaction is committed when fn returns nil and rolled back otherwise,
// including when fn panics.
func (c *Connection) Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	if c == nil || c.Write == nil {
		return ErrNotConnected
	}

	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks that the write side is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Write == nil {
		return ErrNotConnected
	}

	return c.Write.PingContext(ctx) //nolint:wrapcheck
}

func (c *Connection) Close() {
	if c == nil {
		return
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write connection")
		}
	}
}

// DSN builds a lib/pq connection URL. The database name gets the configured
// prefix, if any.
func DSN(config *config.Config, node config.PostgresNode) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(node.Username, node.Password),
		Host:   net.JoinHostPort(node.Host, node.Port),
		Path:   config.DB.Postgres.Prefix + node.Name,
	}

	query := dsn.Query()
	query.Set("sslmode", node.SSLMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func connect(config *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	logger := log.With().
		Str("role", role).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("dbName", config.DB.Postgres.Prefix+node.Name).
		Logger()

	wait := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second
	attempts := max(1, config.DB.Postgres.MaxRetry)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", DSN(config, node))
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			logger.Info().Msg("connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	logger.Error().Msg("giving up connecting to database")

	return nil
}
