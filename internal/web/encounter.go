package web

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/ops"
)

// VisitorCookie holds the visitor's ULID.
const VisitorCookie = "folio_visitor"

const visitorCookieMaxAge = 400 * 24 * time.Hour

type encounterKey struct{}

// encounterMessage returns the footer message stored by the encounters middleware.
func encounterMessage(ctx context.Context) string {
	msg, _ := ctx.Value(encounterKey{}).(string)
	return msg
}

// encounters assigns a visitor cookie and records page views. The "at" query
// parameter labels where a first-time visitor came from. Writes beyond the
// rate limit fall back to a read of the existing record.
func (h *Handlers) encounters(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.db == nil || r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		visitor := visitorID(w, r)

		var out *ops.EncounterOutput
		var err error
		if h.limiter.Allow() {
			out, err = ops.RecordEncounter(r.Context(), h.db, ops.EncounterInput{
				VisitorID: visitor,
				At:        r.URL.Query().Get("at"),
			})
		} else {
			out, err = ops.FetchEncounter(r.Context(), h.db, visitor)
		}
		if err == nil {
			r = r.WithContext(context.WithValue(r.Context(), encounterKey{}, out.Message))
		} else if !errors.Is(err, errors.ErrNotFound) {
			log.Printf("encounter %s: %v", visitor, err)
		}

		next.ServeHTTP(w, r)
	})
}

// visitorID reads the visitor cookie, issuing a new one when absent or malformed.
func visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if _, err := ulid.ParseStrict(c.Value); err == nil {
			return c.Value
		}
	}

	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
