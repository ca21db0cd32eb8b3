package booking

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"doctor-booking-server/internal/models"
)

var fixedNow = time.Date(2026, time.March, 10, 15, 4, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestForm() *Form {
	return NewForm(models.Doctor{Name: "Dr. Xccc", Fee: 1100},
		WithClock(clock),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func fillContact(t *testing.T, f *Form) {
	t.Helper()
	values := map[string]string{
		models.FieldName:   "Jane Doe",
		models.FieldEmail:  "jane@x.com",
		models.FieldPhone:  "1234567890",
		models.FieldReason: "checkup",
	}
	for field, value := range values {
		if err := f.Set(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
}

func TestForm_ContactValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		msg   string
	}{
		{"empty name", models.FieldName, "", "Name is required"},
		{"blank name", models.FieldName, "   ", "Name is required"},
		{"empty email", models.FieldEmail, "", "Email is required"},
		{"email without at", models.FieldEmail, "jane.x.com", "Email is invalid"},
		{"email without dot", models.FieldEmail, "jane@xcom", "Email is invalid"},
		{"empty phone", models.FieldPhone, "", "Phone number is required"},
		{"empty reason", models.FieldReason, "", "Reason for visit is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm()
			fillContact(t, f)
			if err := f.Set(tt.field, tt.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := f.Next()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			want := map[string]string{tt.field: tt.msg}
			if !reflect.DeepEqual(verr.Fields, want) {
				t.Errorf("expected %v, got %v", want, verr.Fields)
			}
			if !reflect.DeepEqual(f.Errors(), want) {
				t.Errorf("expected form errors %v, got %v", want, f.Errors())
			}
			if f.Step() != StepContact {
				t.Errorf("expected to stay on contact step, got %s", f.Step())
			}
		})
	}
}

func TestForm_ContactAllMissing(t *testing.T) {
	f := newTestForm()
	err := f.Next()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 4 {
		t.Errorf("expected 4 field errors, got %v", verr.Fields)
	}
}

func TestForm_EditClearsFieldError(t *testing.T) {
	f := newTestForm()
	_ = f.Next()

	if err := f.Set(models.FieldName, "J"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	errs := f.Errors()
	if _, ok := errs[models.FieldName]; ok {
		t.Error("expected name error to be cleared")
	}
	if _, ok := errs[models.FieldEmail]; !ok {
		t.Error("expected email error to remain")
	}
}

func TestForm_SetUnknownField(t *testing.T) {
	f := newTestForm()
	if err := f.Set("address", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestForm_BackPreservesValues(t *testing.T) {
	f := newTestForm()
	fillContact(t, f)
	if err := f.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = f.Set(models.FieldDate, "2026-03-12")

	if err := f.Back(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Step() != StepContact {
		t.Errorf("expected contact step, got %s", f.Step())
	}
	d := f.Draft()
	if d.Name != "Jane Doe" || d.Date != "2026-03-12" {
		t.Errorf("values lost on back: %+v", d)
	}

	if err := f.Back(); err != nil || f.Step() != StepContact {
		t.Errorf("back on contact step should be a no-op, got %v / %s", err, f.Step())
	}
}

func TestForm_ScheduleValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want map[string]string
	}{
		{"missing both", "", "", map[string]string{
			models.FieldDate: "Date is required",
			models.FieldTime: "Time is required",
		}},
		{"today", "2026-03-10", "9:00 AM", map[string]string{
			models.FieldDate: "Date must be between 2026-03-11 and 2026-04-10",
		}},
		{"past", "2025-12-01", "9:00 AM", map[string]string{
			models.FieldDate: "Date must be between 2026-03-11 and 2026-04-10",
		}},
		{"beyond window", "2026-04-11", "9:00 AM", map[string]string{
			models.FieldDate: "Date must be between 2026-03-11 and 2026-04-10",
		}},
		{"malformed date", "11/03/2026", "9:00 AM", map[string]string{
			models.FieldDate: "Date must be between 2026-03-11 and 2026-04-10",
		}},
		{"off-list slot", "2026-03-11", "12:00 PM", map[string]string{
			models.FieldTime: "Time slot is not available",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm()
			fillContact(t, f)
			if err := f.Next(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = f.Set(models.FieldDate, tt.date)
			_ = f.Set(models.FieldTime, tt.time)

			_, err := f.Submit()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !reflect.DeepEqual(verr.Fields, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, verr.Fields)
			}
			if f.Step() != StepSchedule {
				t.Errorf("expected schedule step, got %s", f.Step())
			}
		})
	}
}

func TestForm_SubmitWindowEdges(t *testing.T) {
	for _, date := range []string{"2026-03-11", "2026-04-10"} {
		f := newTestForm()
		fillContact(t, f)
		_ = f.Next()
		_ = f.Set(models.FieldDate, date)
		_ = f.Set(models.FieldTime, "4:30 PM")

		if _, err := f.Submit(); err != nil {
			t.Errorf("%s: unexpected error: %v", date, err)
		}
	}
}

func TestForm_Submit(t *testing.T) {
	f := newTestForm()
	fillContact(t, f)
	if err := f.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = f.Set(models.FieldDate, "2026-03-15")
	_ = f.Set(models.FieldTime, "9:00 AM")

	rec, err := f.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AppointmentNumber < 100000 || rec.AppointmentNumber > 999999 {
		t.Errorf("appointment number %d out of range", rec.AppointmentNumber)
	}
	if rec.WaitTime < 5 || rec.WaitTime > 24 {
		t.Errorf("wait time %d out of range", rec.WaitTime)
	}
	if rec.Fee != 1100 {
		t.Errorf("expected fee 1100, got %d", rec.Fee)
	}
	if rec.Name != "Jane Doe" || rec.Time != "9:00 AM" {
		t.Errorf("draft not carried into record: %+v", rec)
	}
	if f.Step() != StepSubmitted {
		t.Errorf("expected submitted step, got %s", f.Step())
	}
	if stored, ok := f.Record(); !ok || stored != rec {
		t.Error("expected record to be kept on the form")
	}

	if _, err := f.Submit(); !errors.Is(err, ErrFormSubmitted) {
		t.Errorf("expected ErrFormSubmitted, got %v", err)
	}
	if err := f.Set(models.FieldName, "x"); !errors.Is(err, ErrFormSubmitted) {
		t.Errorf("expected ErrFormSubmitted, got %v", err)
	}
	if err := f.Back(); !errors.Is(err, ErrFormSubmitted) {
		t.Errorf("expected ErrFormSubmitted, got %v", err)
	}
}

func TestForm_WrongStep(t *testing.T) {
	f := newTestForm()
	if _, err := f.Submit(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}

	fillContact(t, f)
	_ = f.Next()
	if err := f.Next(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}
}

func TestForm_RandomRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		f := NewForm(models.Doctor{Fee: 500}, WithClock(clock), WithRand(rng))
		fillContact(t, f)
		_ = f.Next()
		_ = f.Set(models.FieldDate, "2026-03-20")
		_ = f.Set(models.FieldTime, "2:00 PM")
		rec, err := f.Submit()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.AppointmentNumber < 100000 || rec.AppointmentNumber > 999999 {
			t.Fatalf("appointment number %d out of range", rec.AppointmentNumber)
		}
		if rec.WaitTime < 5 || rec.WaitTime > 24 {
			t.Fatalf("wait time %d out of range", rec.WaitTime)
		}
	}
}

func TestForm_ContactLockedOnSchedule(t *testing.T) {
	f := newTestForm()
	fillContact(t, f)
	if err := f.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{models.FieldName, models.FieldEmail, models.FieldPhone, models.FieldReason} {
		if err := f.Set(field, ""); !errors.Is(err, ErrWrongStep) {
			t.Errorf("set %s: expected ErrWrongStep, got %v", field, err)
		}
	}
	if err := f.SetAll(map[string]string{models.FieldDate: "2026-03-12", models.FieldEmail: "bogus"}); !errors.Is(err, ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}

	_ = f.Set(models.FieldDate, "2026-03-12")
	_ = f.Set(models.FieldTime, "9:00 AM")
	rec, err := f.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Jane Doe" || rec.Email != "jane@x.com" {
		t.Errorf("contact details changed after step 1: %+v", rec.AppointmentDraft)
	}

	// editing contact details again means going back and passing step 1 again
	f = newTestForm()
	fillContact(t, f)
	_ = f.Next()
	_ = f.Back()
	if err := f.Set(models.FieldName, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var verr *ValidationError
	if err := f.Next(); !errors.As(err, &verr) || verr.Fields[models.FieldName] != "Name is required" {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestForm_SetAll(t *testing.T) {
	f := newTestForm()
	_ = f.Next()

	err := f.SetAll(map[string]string{models.FieldName: "Jane", "zzz": "x"})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if f.Draft().Name != "" {
		t.Errorf("expected no field applied, got %+v", f.Draft())
	}
	if _, ok := f.Errors()[models.FieldName]; !ok {
		t.Error("expected name error to remain")
	}

	if err := f.SetAll(map[string]string{models.FieldName: "Jane", models.FieldPhone: "123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, errs := f.Draft(), f.Errors()
	if d.Name != "Jane" || d.Phone != "123" {
		t.Errorf("unexpected draft %+v", d)
	}
	if len(errs) != 2 {
		t.Errorf("expected email and reason errors only, got %v", errs)
	}
}
