package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/google/uuid"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	minPhoneDigits = 7
	maxNotesLength = 1000
)

// ValidationError lists the reservation fields that failed validation,
// keyed by form field name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid reservation: " + strings.Join(parts, "; ")
}

// Submitter receives validated reservations. Delivery is up to the implementation.
type Submitter interface {
	Submit(ctx context.Context, r models.Reservation) error
}

// LogSubmitter records reservations in the structured log without delivering them anywhere
type LogSubmitter struct {
	log *slog.Logger
}

// NewLogSubmitter creates a new log submitter
func NewLogSubmitter(log *slog.Logger) *LogSubmitter {
	return &LogSubmitter{log: log}
}

// Submit logs the reservation
func (s *LogSubmitter) Submit(ctx context.Context, r models.Reservation) error {
	s.log.InfoContext(ctx, "reservation received",
		"reservation_id", r.ID,
		"date", r.Date,
		"time", r.Time,
		"guests", r.Guests,
	)
	return nil
}

// ReservationService validates reservation requests and hands them to a Submitter
type ReservationService struct {
	submitter Submitter
	now       func() time.Time
}

// NewReservationService creates a new reservation service
func NewReservationService(submitter Submitter) *ReservationService {
	return &ReservationService{
		submitter: submitter,
		now:       time.Now,
	}
}

// Submit validates the form and passes the resulting reservation to the submitter.
// Validation failures are returned as *ValidationError.
func (s *ReservationService) Submit(ctx context.Context, form models.ReservationForm) (*models.Reservation, error) {
	reservation, err := Validate(form)
	if err != nil {
		return nil, err
	}

	reservation.ID = uuid.New().String()
	reservation.ReceivedAt = s.now().UTC()

	if err := s.submitter.Submit(ctx, *reservation); err != nil {
		return nil, fmt.Errorf("failed to submit reservation: %w", err)
	}

	return reservation, nil
}

// Validate checks presence and type of every reservation field
func Validate(form models.ReservationForm) (*models.Reservation, error) {
	fields := make(map[string]string)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		fields["name"] = "Please enter your name"
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		fields["email"] = "Please enter your email"
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		fields["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		fields["phone"] = "Please enter your phone number"
	} else if !validPhone(phone) {
		fields["phone"] = "Please enter a valid phone number"
	}

	date := strings.TrimSpace(form.Date)
	if date == "" {
		fields["date"] = "Please choose a date"
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		fields["date"] = "Please enter a date as YYYY-MM-DD"
	}

	at := strings.TrimSpace(form.Time)
	if at == "" {
		fields["time"] = "Please choose a time"
	} else if _, err := time.Parse(timeLayout, at); err != nil {
		fields["time"] = "Please enter a time as HH:MM"
	}

	var guests int
	guestsRaw := strings.TrimSpace(form.Guests)
	if guestsRaw == "" {
		fields["guests"] = "Please enter the number of guests"
	} else if n, err := strconv.Atoi(guestsRaw); err != nil || n < 1 {
		fields["guests"] = "Number of guests must be at least 1"
	} else {
		guests = n
	}

	notes := strings.TrimSpace(form.Notes)
	if utf8.RuneCountInString(notes) > maxNotesLength {
		fields["notes"] = fmt.Sprintf("Special requests must be at most %d characters", maxNotesLength)
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &models.Reservation{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Date:   date,
		Time:   at,
		Guests: guests,
		Notes:  notes,
	}, nil
}

// validPhone accepts digits with common separators and an optional leading +
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case strings.ContainsRune(" -().", r):
		default:
			return false
		}
	}
	return digits >= minPhoneDigits
}
