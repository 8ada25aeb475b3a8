package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadgate/internal/domain"
	"leadgate/pkg/platform/sentinel"
)

//go:embed schema.sql
var schema string

// Postgres persists submissions with pgx. Connection-level failures are
// reported as sentinel.ErrUnavailable so orchestrators treat them as tolerated
// downtime; constraint violations surface as sentinel.ErrConflict and are
// fatal to the request.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pool for the given URL.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Migrate applies the embedded schema. Idempotent.
func (s *Postgres) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Postgres) Close() {
	s.pool.Close()
}

// classify maps a pgx error onto the store's sentinel taxonomy. A PgError is
// the server talking, so the connection works: unique violations are
// conflicts, anything else a data error passed through. Everything else
// (dial errors, closed pools, timeouts) counts as store unavailability.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, sentinel.ErrConflict)
		}
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("%v: %w", err, sentinel.ErrUnavailable)
}

func (s *Postgres) SaveContact(ctx context.Context, c *domain.Contact) error {
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contacts (id, name, email, phone, subject, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *Postgres) SaveEventRegistration(ctx context.Context, r *domain.EventRegistration) error {
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	_, err := s.pool.Exec(ctx, `
		INSERT INTO event_registrations
			(id, event_id, name, email, phone, business_name, additional_info,
			 amount, currency, payment_reference, payment_state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.ID, r.EventID, r.Name, r.Email, r.Phone, r.BusinessName, r.AdditionalInfo,
		r.Amount, r.Currency, r.PaymentReference, r.PaymentState, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *Postgres) SaveWebinarRegistration(ctx context.Context, r *domain.WebinarRegistration) error {
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	_, err := s.pool.Exec(ctx, `
		INSERT INTO webinar_registrations
			(id, name, business_name, phone, email, questions,
			 amount, currency, payment_reference, payment_state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.Name, r.BusinessName, r.Phone, r.Email, r.Questions,
		r.Amount, r.Currency, r.PaymentReference, r.PaymentState, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *Postgres) SaveBusinessClubRegistration(ctx context.Context, r *domain.BusinessClubRegistration) error {
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	_, err := s.pool.Exec(ctx, `
		INSERT INTO business_club_registrations
			(id, full_name, phone, email, business_name, business_type, business_location,
			 years_in_business, number_of_employees, business_realities, expectations,
			 focus_areas, how_did_you_hear, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		r.ID, r.FullName, r.Phone, r.Email, r.BusinessName, r.BusinessType, r.BusinessLocation,
		r.YearsInBusiness, r.NumberOfEmployees, r.BusinessRealities, r.Expectations,
		r.FocusAreas, r.HowDidYouHear, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *Postgres) SaveServiceInquiry(ctx context.Context, inq *domain.ServiceInquiry) error {
	now := time.Now()
	inq.CreatedAt, inq.UpdatedAt = now, now
	_, err := s.pool.Exec(ctx, `
		INSERT INTO service_inquiries
			(id, service_name, service_category, name, email, phone, business_name, message,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inq.ID, inq.ServiceName, inq.ServiceCategory, inq.Name, inq.Email, inq.Phone,
		inq.BusinessName, inq.Message, inq.CreatedAt, inq.UpdatedAt,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

const eventColumns = `id, event_id, name, email, phone, business_name, additional_info,
	amount, currency, payment_reference, payment_state, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.EventRegistration, error) {
	var r domain.EventRegistration
	err := row.Scan(&r.ID, &r.EventID, &r.Name, &r.Email, &r.Phone, &r.BusinessName,
		&r.AdditionalInfo, &r.Amount, &r.Currency, &r.PaymentReference, &r.PaymentState,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Postgres) FindEventByPaymentReference(ctx context.Context, reference string) (*domain.EventRegistration, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM event_registrations
		WHERE payment_reference = $1 AND payment_reference <> ''`, reference)
	r, err := scanEvent(row)
	if err != nil {
		return nil, classify(err)
	}
	return r, nil
}

const webinarColumns = `id, name, business_name, phone, email, questions,
	amount, currency, payment_reference, payment_state, created_at, updated_at`

func scanWebinar(row pgx.Row) (*domain.WebinarRegistration, error) {
	var r domain.WebinarRegistration
	err := row.Scan(&r.ID, &r.Name, &r.BusinessName, &r.Phone, &r.Email, &r.Questions,
		&r.Amount, &r.Currency, &r.PaymentReference, &r.PaymentState, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Postgres) FindWebinarByPaymentReference(ctx context.Context, reference string) (*domain.WebinarRegistration, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+webinarColumns+`
		FROM webinar_registrations
		WHERE payment_reference = $1 AND payment_reference <> ''`, reference)
	r, err := scanWebinar(row)
	if err != nil {
		return nil, classify(err)
	}
	return r, nil
}

func (s *Postgres) TransitionEventPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.EventRegistration, bool, error) {
	// Conditional update: only a pending record transitions. The follow-up
	// read distinguishes "already in target state" from "not found".
	row := s.pool.QueryRow(ctx, `
		UPDATE event_registrations
		SET payment_state = $2, updated_at = $3
		WHERE payment_reference = $1 AND payment_reference <> '' AND payment_state = 'pending'
		RETURNING `+eventColumns, reference, to, time.Now())
	r, err := scanEvent(row)
	if err == nil {
		return r, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, classify(err)
	}

	existing, ferr := s.FindEventByPaymentReference(ctx, reference)
	if ferr != nil {
		return nil, false, ferr
	}
	if existing.PaymentState == to {
		return existing, false, nil
	}
	return nil, false, fmt.Errorf("payment state %s cannot become %s: %w", existing.PaymentState, to, sentinel.ErrConflict)
}

func (s *Postgres) TransitionWebinarPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.WebinarRegistration, bool, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE webinar_registrations
		SET payment_state = $2, updated_at = $3
		WHERE payment_reference = $1 AND payment_reference <> '' AND payment_state = 'pending'
		RETURNING `+webinarColumns, reference, to, time.Now())
	r, err := scanWebinar(row)
	if err == nil {
		return r, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, classify(err)
	}

	existing, ferr := s.FindWebinarByPaymentReference(ctx, reference)
	if ferr != nil {
		return nil, false, ferr
	}
	if existing.PaymentState == to {
		return existing, false, nil
	}
	return nil, false, fmt.Errorf("payment state %s cannot become %s: %w", existing.PaymentState, to, sentinel.ErrConflict)
}

// Health pings the database.
func (s *Postgres) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
