// internal/booking/rebooking.go
package booking

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

// Rebooking tokens are "<row id>.<secret>". Only the bcrypt hash of
// the secret is stored; a token row is burned on first redemption and
// lapses when its slot starts.

func (m *Manager) IssueRebookingToken(ctx context.Context, memberID, courtID int64, date string, hour int64) (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating token secret: %w", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing token secret: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("error parsing slot date: %w", err)
	}

	row, err := m.db.Queries.CreateRebookingToken(ctx, dbgen.CreateRebookingTokenParams{
		MemberID:  memberID,
		TokenHash: string(hash),
		CourtID:   courtID,
		Date:      date,
		Hour:      hour,
		ExpiresAt: day.Add(time.Duration(hour) * time.Hour),
	})
	if err != nil {
		return "", fmt.Errorf("error storing rebooking token: %w", err)
	}

	token := fmt.Sprintf("%d.%s", row.ID, secret)
	return fmt.Sprintf("%s/api/v1/rebooking?token=%s", m.baseURL, url.QueryEscape(token)), nil
}

// RedeemRebookingToken consumes a token and books the freed slot for
// the member as an in-person reservation. Consumption is guarded by
// rows-affected, so two racing redemptions burn the token exactly
// once.
func (m *Manager) RedeemRebookingToken(ctx context.Context, token string) (dbgen.Reservation, error) {
	idPart, secret, ok := strings.Cut(token, ".")
	if !ok {
		return dbgen.Reservation{}, ErrTokenInvalid
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return dbgen.Reservation{}, ErrTokenInvalid
	}

	row, err := m.db.Queries.GetRebookingToken(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Reservation{}, ErrTokenInvalid
		}
		return dbgen.Reservation{}, fmt.Errorf("error loading rebooking token: %w", err)
	}
	if row.UsedAt.Valid {
		return dbgen.Reservation{}, ErrTokenUsed
	}
	if m.clock.Now().After(row.ExpiresAt) {
		return dbgen.Reservation{}, ErrTokenInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(row.TokenHash), []byte(secret)) != nil {
		return dbgen.Reservation{}, ErrTokenInvalid
	}

	rows, err := m.db.Queries.ConsumeRebookingToken(ctx, dbgen.ConsumeRebookingTokenParams{
		UsedAt: sql.NullTime{Time: m.clock.Now(), Valid: true},
		ID:     row.ID,
	})
	if err != nil {
		return dbgen.Reservation{}, fmt.Errorf("error consuming rebooking token: %w", err)
	}
	if rows == 0 {
		return dbgen.Reservation{}, ErrTokenUsed
	}

	member, err := m.db.Queries.GetMember(ctx, row.MemberID)
	if err != nil {
		return dbgen.Reservation{}, fmt.Errorf("error loading member: %w", err)
	}

	// The freed slot is near-term, inside the usual lead-time window;
	// the invitation itself is the authorization to skip it.
	return m.Create(ctx, CreateRequest{
		CourtID:       row.CourtID,
		MemberID:      member.ID,
		ClientName:    member.FirstName + " " + member.LastName,
		ClientEmail:   member.Email,
		Date:          row.Date,
		Hour:          row.Hour,
		PaymentMethod: PaymentInPerson,
		Actor:         member.Email,
		Admin:         true,
	})
}
