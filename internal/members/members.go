// internal/members/members.go

// Package members is the registry glue: member registration with
// phone normalization, household structure, and the age-band
// categories dues emission prices against.
package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

var ErrMemberNotFound = errors.New("member not found")

// Service handles registry writes for one club.
type Service struct {
	db     *db.DB
	clock  clock.Clock
	clubID int64
	region string // default phone region, e.g. "AR"
}

func NewService(database *db.DB, clk clock.Clock, clubID int64, region string) *Service {
	return &Service{db: database, clock: clk, clubID: clubID, region: region}
}

// NormalizePhone parses a phone number and returns it in E.164 form.
func NormalizePhone(raw, region string) (string, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("number is not valid for region %s", region)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// AgeOn returns whole years between a YYYY-MM-DD birth date and a
// reference day.
func AgeOn(birthDate string, on time.Time) (int64, error) {
	birth, err := time.ParseInLocation("2006-01-02", birthDate, time.Local)
	if err != nil {
		return 0, fmt.Errorf("error parsing birth date: %w", err)
	}
	age := int64(on.Year() - birth.Year())
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, fmt.Errorf("birth date is in the future")
	}
	return age, nil
}

type RegisterRequest struct {
	HeadMemberID int64 // 0 for a household head
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	BirthDate    string
	NotifyOptIn  bool
	IsStaff      bool
	JoinedOn     string // defaults to today
}

// Register creates a member, normalizing the phone number and, for
// dependents, checking the head exists and is itself a head.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (dbgen.Member, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	if req.FirstName == "" {
		return dbgen.Member{}, apiutil.FieldError{Field: "first_name", Reason: "is required"}
	}
	req.LastName = strings.TrimSpace(req.LastName)
	if req.LastName == "" {
		return dbgen.Member{}, apiutil.FieldError{Field: "last_name", Reason: "is required"}
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return dbgen.Member{}, apiutil.FieldError{Field: "email", Reason: "must be a valid email address"}
	}
	if _, err := apiutil.ParseDate("birth_date", req.BirthDate); err != nil {
		return dbgen.Member{}, err
	}

	phone := ""
	if req.Phone != "" {
		normalized, err := NormalizePhone(req.Phone, s.region)
		if err != nil {
			return dbgen.Member{}, apiutil.FieldError{Field: "phone", Reason: "must be a valid phone number"}
		}
		phone = normalized
	}

	headID := sql.NullInt64{}
	if req.HeadMemberID > 0 {
		head, err := s.db.Queries.GetMember(ctx, req.HeadMemberID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return dbgen.Member{}, apiutil.FieldError{Field: "head_member_id", Reason: "unknown member"}
			}
			return dbgen.Member{}, fmt.Errorf("error loading head member: %w", err)
		}
		if head.Status != "active" || head.HeadMemberID.Valid {
			return dbgen.Member{}, apiutil.FieldError{Field: "head_member_id", Reason: "must be an active household head"}
		}
		headID = sql.NullInt64{Int64: head.ID, Valid: true}
	}

	joinedOn := req.JoinedOn
	if joinedOn == "" {
		joinedOn = s.clock.Now().Format("2006-01-02")
	} else if _, err := apiutil.ParseDate("joined_on", joinedOn); err != nil {
		return dbgen.Member{}, err
	}

	member, err := s.db.Queries.CreateMember(ctx, dbgen.CreateMemberParams{
		ClubID:       s.clubID,
		HeadMemberID: headID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        phone,
		BirthDate:    req.BirthDate,
		JoinedOn:     joinedOn,
		NotifyOptIn:  req.NotifyOptIn,
		IsStaff:      req.IsStaff,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.Member{}, apiutil.FieldError{Field: "email", Reason: "is already registered"}
		}
		return dbgen.Member{}, fmt.Errorf("error creating member: %w", err)
	}
	return member, nil
}

func (s *Service) Get(ctx context.Context, id int64) (dbgen.Member, error) {
	member, err := s.db.Queries.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Member{}, ErrMemberNotFound
		}
		return dbgen.Member{}, fmt.Errorf("error loading member: %w", err)
	}
	if member.Status != "active" || member.ClubID != s.clubID {
		return dbgen.Member{}, ErrMemberNotFound
	}
	return member, nil
}

type CategoryRequest struct {
	Name     string
	MinAge   int64
	MaxAge   int64
	FeeCents int64
}

// CreateCategory adds an age band. Bands must not overlap: every age
// resolves to exactly one fee at emission time.
func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest) (dbgen.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return dbgen.Category{}, apiutil.FieldError{Field: "name", Reason: "is required"}
	}
	if req.MinAge < 0 || req.MaxAge < req.MinAge {
		return dbgen.Category{}, apiutil.FieldError{Field: "max_age", Reason: "must be >= min_age, both non-negative"}
	}
	if req.FeeCents < 0 {
		return dbgen.Category{}, apiutil.FieldError{Field: "fee_cents", Reason: "must be non-negative"}
	}

	overlapping, err := s.db.Queries.CountOverlappingCategories(ctx, dbgen.CountOverlappingCategoriesParams{
		ClubID: s.clubID,
		MinAge: req.MinAge,
		MaxAge: req.MaxAge,
	})
	if err != nil {
		return dbgen.Category{}, fmt.Errorf("error checking category overlap: %w", err)
	}
	if overlapping > 0 {
		return dbgen.Category{}, apiutil.FieldError{Field: "min_age", Reason: "age range overlaps an existing category"}
	}

	cat, err := s.db.Queries.CreateCategory(ctx, dbgen.CreateCategoryParams{
		ClubID:   s.clubID,
		Name:     req.Name,
		MinAge:   req.MinAge,
		MaxAge:   req.MaxAge,
		FeeCents: req.FeeCents,
	})
	if err != nil {
		return dbgen.Category{}, fmt.Errorf("error creating category: %w", err)
	}
	return cat, nil
}
