package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Lixing-Zhang/nova-site/internal/models"
	"github.com/Lixing-Zhang/nova-site/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSubmitter keeps every reservation it receives
type recordingSubmitter struct {
	received []models.Reservation
	err      error
}

func (r *recordingSubmitter) Submit(ctx context.Context, res models.Reservation) error {
	if r.err != nil {
		return r.err
	}
	r.received = append(r.received, res)
	return nil
}

func validForm() models.ReservationForm {
	return models.ReservationForm{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  "(555) 123-4567",
		Date:   "2026-11-20",
		Time:   "19:30",
		Guests: "4",
		Notes:  "Window seat please",
	}
}

func TestReservationService_Submit(t *testing.T) {
	sub := &recordingSubmitter{}
	svc := NewReservationService(sub)
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 4, res.Guests)
	assert.Equal(t, fixed, res.ReceivedAt)
	require.Len(t, sub.received, 1)
	assert.Equal(t, *res, sub.received[0])
}

func TestReservationService_SubmitValidationFailure(t *testing.T) {
	sub := &recordingSubmitter{}
	svc := NewReservationService(sub)

	_, err := svc.Submit(context.Background(), models.ReservationForm{})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 6)
	assert.NotContains(t, verr.Fields, "notes")
	assert.Empty(t, sub.received, "invalid reservations must not reach the submitter")
}

func TestReservationService_SubmitterFailure(t *testing.T) {
	boom := errors.New("downstream unavailable")
	svc := NewReservationService(&recordingSubmitter{err: boom})

	_, err := svc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, boom)
}

func TestReservationService_WithLogSubmitter(t *testing.T) {
	var buf strings.Builder
	svc := NewReservationService(NewLogSubmitter(logger.NewWithWriter(&buf, "info")))

	res, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reservation received")
	assert.Contains(t, buf.String(), res.ID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *models.ReservationForm)
		wantField string
	}{
		{"missing name", func(f *models.ReservationForm) { f.Name = "  " }, "name"},
		{"missing email", func(f *models.ReservationForm) { f.Email = "" }, "email"},
		{"malformed email", func(f *models.ReservationForm) { f.Email = "ada-at-example" }, "email"},
		{"email with display name", func(f *models.ReservationForm) { f.Email = "Ada <ada@example.com>" }, "email"},
		{"missing phone", func(f *models.ReservationForm) { f.Phone = "" }, "phone"},
		{"phone with letters", func(f *models.ReservationForm) { f.Phone = "555-CALL-NOW" }, "phone"},
		{"phone too short", func(f *models.ReservationForm) { f.Phone = "12345" }, "phone"},
		{"missing date", func(f *models.ReservationForm) { f.Date = "" }, "date"},
		{"malformed date", func(f *models.ReservationForm) { f.Date = "20/11/2026" }, "date"},
		{"missing time", func(f *models.ReservationForm) { f.Time = "" }, "time"},
		{"malformed time", func(f *models.ReservationForm) { f.Time = "7pm" }, "time"},
		{"missing guests", func(f *models.ReservationForm) { f.Guests = "" }, "guests"},
		{"zero guests", func(f *models.ReservationForm) { f.Guests = "0" }, "guests"},
		{"non-numeric guests", func(f *models.ReservationForm) { f.Guests = "four" }, "guests"},
		{"notes too long", func(f *models.ReservationForm) { f.Notes = strings.Repeat("x", maxNotesLength+1) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := Validate(form)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Contains(t, verr.Fields, tt.wantField)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidate_TrimsAndAcceptsOptionalNotes(t *testing.T) {
	form := validForm()
	form.Name = "  Ada Lovelace "
	form.Phone = "+1 555 123 4567"
	form.Notes = ""

	res, err := Validate(form)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", res.Name)
	assert.Equal(t, "+1 555 123 4567", res.Phone)
	assert.Empty(t, res.Notes)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"time": "bad", "date": "bad"}}
	assert.Equal(t, "invalid reservation: date: bad; time: bad", err.Error())
}
