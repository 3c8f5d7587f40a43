package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/folio/internal/errors"
)

// ErrUniqueConstraint is returned when an insert violates a UNIQUE constraint.
var ErrUniqueConstraint = &errors.FolioError{
	Code:    "UNIQUE_CONSTRAINT",
	Status:  409,
	Message: "unique constraint violation",
}

// Encounter is the visit record of one visitor.
type Encounter struct {
	// VisitorID identifies the browser or client (a ULID cookie for the web UI)
	VisitorID string `json:"visitor_id"`

	// Where is the referral label of the first visit
	Where string `json:"where"`

	// FirstAt is the Unix timestamp of the first visit
	FirstAt int64 `json:"first_at"`

	// LastAt is the Unix timestamp of the latest visit
	LastAt int64 `json:"last_at"`

	// Times counts visits on distinct calendar days
	Times int `json:"times"`
}

// InsertEncounter stores a new encounter record.
func InsertEncounter(ctx context.Context, db *sql.DB, e *Encounter) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO encounters (visitor_id, where_from, first_at, last_at, times)
		VALUES (?, ?, ?, ?, ?)
	`, e.VisitorID, e.Where, e.FirstAt, e.LastAt, e.Times)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}
	return nil
}

// GetEncounter retrieves the record of visitorID.
func GetEncounter(ctx context.Context, db *sql.DB, visitorID string) (*Encounter, error) {
	row := db.QueryRowContext(ctx, `
		SELECT visitor_id, where_from, first_at, last_at, times
		FROM encounters
		WHERE visitor_id = ?
	`, visitorID)

	var e Encounter
	err := row.Scan(&e.VisitorID, &e.Where, &e.FirstAt, &e.LastAt, &e.Times)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("encounter", visitorID)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return &e, nil
}

// UpdateEncounter writes the last visit time and counter of an existing record.
func UpdateEncounter(ctx context.Context, db *sql.DB, e *Encounter) error {
	result, err := db.ExecContext(ctx, `
		UPDATE encounters SET last_at = ?, times = ?
		WHERE visitor_id = ?
	`, e.LastAt, e.Times, e.VisitorID)
	if err != nil {
		return errors.NewInternal(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rows == 0 {
		return errors.NewNotFound("encounter", e.VisitorID)
	}
	return nil
}

// CountEncountersByWhere returns the number of visitors per referral label.
func CountEncountersByWhere(ctx context.Context, db *sql.DB) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT where_from, COUNT(*) FROM encounters GROUP BY where_from
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var where string
		var n int
		if err := rows.Scan(&where, &n); err != nil {
			return nil, errors.NewInternal(err)
		}
		counts[where] = n
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return counts, nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
