package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// ConnectionString returns the PostgreSQL connection string for c.
func (c *PostgresConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, sslMode)
}

// AggregateRecord is one completed batch's published aggregate result.
type AggregateRecord struct {
	BatchID       string
	CircuitName   string
	MeasurementCt int
	Result        []*big.Int
}

// PostgresStore is a PostgreSQL-backed audit log of aggregate results.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to config and runs migrations.
func NewPostgresStore(config *PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS aggregate_results (
		batch_id VARCHAR(128) PRIMARY KEY,
		circuit_name VARCHAR(64) NOT NULL,
		measurement_count INTEGER NOT NULL,
		result_vector TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_aggregate_results_circuit ON aggregate_results(circuit_name);
	CREATE INDEX IF NOT EXISTS idx_aggregate_results_created ON aggregate_results(created_at);
	`
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveResult persists one batch's published aggregate result.
func (s *PostgresStore) SaveResult(record AggregateRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
	INSERT INTO aggregate_results (batch_id, circuit_name, measurement_count, result_vector)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (batch_id) DO UPDATE SET
		circuit_name = EXCLUDED.circuit_name,
		measurement_count = EXCLUDED.measurement_count,
		result_vector = EXCLUDED.result_vector
	`
	_, err := s.db.ExecContext(ctx, query, record.BatchID, record.CircuitName, record.MeasurementCt, encodeResultVector(record.Result))
	return err
}

// LoadResult retrieves a previously persisted aggregate result by batch ID.
func (s *PostgresStore) LoadResult(batchID string) (AggregateRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rec AggregateRecord
	var resultVector string
	row := s.db.QueryRowContext(ctx, `
		SELECT batch_id, circuit_name, measurement_count, result_vector
		FROM aggregate_results WHERE batch_id = $1
	`, batchID)
	if err := row.Scan(&rec.BatchID, &rec.CircuitName, &rec.MeasurementCt, &resultVector); err != nil {
		return AggregateRecord{}, fmt.Errorf("store: loading aggregate result: %w", err)
	}
	result, err := decodeResultVector(resultVector)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("store: loading aggregate result: %w", err)
	}
	rec.Result = result
	return rec, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func encodeResultVector(v []*big.Int) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}

func decodeResultVector(s string) ([]*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]*big.Int, len(parts))
	for i, p := range parts {
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, fmt.Errorf("store: malformed result vector element %q", p)
		}
		out[i] = v
	}
	return out, nil
}

// InMemoryStore is a non-persistent stand-in for PostgresStore, useful in
// tests and local demo runs without a database.
type InMemoryStore struct {
	records map[string]AggregateRecord
}

// NewInMemoryStore returns an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]AggregateRecord)}
}

func (s *InMemoryStore) SaveResult(record AggregateRecord) error {
	s.records[record.BatchID] = record
	return nil
}

func (s *InMemoryStore) LoadResult(batchID string) (AggregateRecord, error) {
	rec, ok := s.records[batchID]
	if !ok {
		return AggregateRecord{}, fmt.Errorf("store: no aggregate result for batch %q", batchID)
	}
	return rec, nil
}
