package ops

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hpungsan/folio/internal/db"
	"github.com/hpungsan/folio/internal/errors"
)

// DefaultWhere labels visits that arrive without an "at" referral.
const DefaultWhere = "in a web search"

// EncounterInput contains parameters for the RecordEncounter operation.
type EncounterInput struct {
	VisitorID string    // required
	At        string    // referral label, only used on the first visit
	Now       time.Time // default: time.Now()
}

// EncounterOutput contains an encounter record and its display message.
type EncounterOutput struct {
	db.Encounter
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// RecordEncounter registers a visit. The first visit creates the record;
// later visits move last_at and count at most once per UTC calendar day.
func RecordEncounter(ctx context.Context, database *sql.DB, input EncounterInput) (*EncounterOutput, error) {
	visitorID := strings.TrimSpace(input.VisitorID)
	if visitorID == "" {
		return nil, errors.NewInvalidRequest("visitor_id is required")
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	existing, err := db.GetEncounter(ctx, database, visitorID)
	if err != nil && !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		where := strings.TrimSpace(input.At)
		if where == "" {
			where = DefaultWhere
		}
		e := db.Encounter{
			VisitorID: visitorID,
			Where:     where,
			FirstAt:   now.Unix(),
			LastAt:    now.Unix(),
			Times:     1,
		}
		err := db.InsertEncounter(ctx, database, &e)
		if err == db.ErrUniqueConstraint {
			// Lost a race with a concurrent first visit; count this one as a revisit.
			return RecordEncounter(ctx, database, input)
		}
		if err != nil {
			return nil, err
		}
		return &EncounterOutput{Encounter: e, Created: true, Message: Message(e)}, nil
	}

	e := *existing
	if !sameDay(time.Unix(e.LastAt, 0), now) {
		e.Times++
	}
	e.LastAt = now.Unix()
	if err := db.UpdateEncounter(ctx, database, &e); err != nil {
		return nil, err
	}
	return &EncounterOutput{Encounter: e, Message: Message(e)}, nil
}

// FetchEncounter returns the record of visitorID.
func FetchEncounter(ctx context.Context, database *sql.DB, visitorID string) (*EncounterOutput, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return nil, errors.NewInvalidRequest("visitor_id is required")
	}
	e, err := db.GetEncounter(ctx, database, visitorID)
	if err != nil {
		return nil, err
	}
	return &EncounterOutput{Encounter: *e, Message: Message(*e)}, nil
}

// EncounterStats counts visitors per referral label.
func EncounterStats(ctx context.Context, database *sql.DB) (map[string]int, error) {
	return db.CountEncountersByWhere(ctx, database)
}

// Message renders the footer line for e.
func Message(e db.Encounter) string {
	first := time.Unix(e.FirstAt, 0).UTC().Format("2006/01/02")
	return fmt.Sprintf("first encountered %s on %s", e.Where, first)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
