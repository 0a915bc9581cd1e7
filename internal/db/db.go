// Package db persists combat history to PostgreSQL. It records blow
// outcomes only; live game state never touches the database.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Journal wraps a pgx connection pool for battle-journal writes.
type Journal struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Journal handle.
func New(ctx context.Context, dsn string) (*Journal, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Journal{pool: pool}, nil
}

// Close closes the database connection pool.
func (j *Journal) Close() {
	j.pool.Close()
}

// BlowRecord is one resolved blow as written to the journal.
type BlowRecord struct {
	EncounterID  uuid.UUID
	Turn         int
	BlowIndex    int
	Method       string
	Effect       string
	Damage       int
	Obvious      bool
	Blinked      bool
	Broke        bool
	DefenderHP   int
	DefenderDead bool
	CreatedAt    time.Time
}

// RecordBlow appends one blow outcome to the journal.
func (j *Journal) RecordBlow(ctx context.Context, rec BlowRecord) error {
	_, err := j.pool.Exec(ctx,
		`INSERT INTO blow_records
		 (encounter_id, turn, blow_index, method, effect, damage,
		  obvious, blinked, broke, defender_hp, defender_dead)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.EncounterID, rec.Turn, rec.BlowIndex, rec.Method, rec.Effect,
		rec.Damage, rec.Obvious, rec.Blinked, rec.Broke,
		rec.DefenderHP, rec.DefenderDead,
	)
	if err != nil {
		return fmt.Errorf("recording blow for encounter %s: %w", rec.EncounterID, err)
	}
	return nil
}

// EncounterBlows returns the journal rows for one encounter in blow order.
func (j *Journal) EncounterBlows(ctx context.Context, encounterID uuid.UUID) ([]BlowRecord, error) {
	rows, err := j.pool.Query(ctx,
		`SELECT encounter_id, turn, blow_index, method, effect, damage,
		        obvious, blinked, broke, defender_hp, defender_dead, created_at
		 FROM blow_records
		 WHERE encounter_id = $1
		 ORDER BY turn, blow_index`, encounterID)
	if err != nil {
		return nil, fmt.Errorf("querying encounter %s: %w", encounterID, err)
	}
	defer rows.Close()

	var out []BlowRecord
	for rows.Next() {
		var rec BlowRecord
		if err := rows.Scan(&rec.EncounterID, &rec.Turn, &rec.BlowIndex,
			&rec.Method, &rec.Effect, &rec.Damage, &rec.Obvious, &rec.Blinked,
			&rec.Broke, &rec.DefenderHP, &rec.DefenderDead, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning blow record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
