// Package booking implements the two-step appointment form: contact details
// first, then date and time, ending in an AppointmentRecord.
package booking

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"doctor-booking-server/internal/models"
)

// Step is a state of the booking form.
type Step int

const (
	StepContact Step = iota + 1
	StepSchedule
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepSchedule:
		return "schedule"
	case StepSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// MarshalText lets steps travel as their names in JSON.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a step name written by MarshalText.
func (s *Step) UnmarshalText(text []byte) error {
	for _, step := range []Step{StepContact, StepSchedule, StepSubmitted} {
		if step.String() == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", text)
}

var (
	ErrUnknownField  = errors.New("unknown form field")
	ErrFormSubmitted = errors.New("form already submitted")
	ErrWrongStep     = errors.New("operation not allowed in current step")
)

const (
	minAppointmentNumber = 100000
	maxAppointmentNumber = 999999
	minWaitMinutes       = 5
	maxWaitMinutes       = 24
)

// Form is the booking state machine for one doctor. It is owned by a single
// caller and is not safe for concurrent use.
type Form struct {
	doctor    models.Doctor
	step      Step
	draft     models.AppointmentDraft
	errors    map[string]string
	record    *models.AppointmentRecord
	validator *Validator
	rng       *rand.Rand
}

// Option configures a Form.
type Option func(*Form)

// WithClock sets the clock date validation is relative to.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.validator = NewValidator(now) }
}

// WithRand sets the source of appointment numbers and wait estimates.
func WithRand(rng *rand.Rand) Option {
	return func(f *Form) { f.rng = rng }
}

// NewForm opens a form on the contact step for the given doctor.
func NewForm(doctor models.Doctor, opts ...Option) *Form {
	f := &Form{
		doctor: doctor,
		step:   StepContact,
		errors: map[string]string{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.validator == nil {
		f.validator = NewValidator(time.Now)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return f
}

func (f *Form) Step() Step { return f.step }
func (f *Form) Doctor() models.Doctor { return f.doctor }
func (f *Form) Draft() models.AppointmentDraft { return f.draft }

// Errors returns a copy of the current field errors.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Record returns the appointment produced by Submit, if any.
func (f *Form) Record() (models.AppointmentRecord, bool) {
	if f.record == nil {
		return models.AppointmentRecord{}, false
	}
	return *f.record, true
}

// Set edits one draft field and drops any error shown for it. Contact fields
// can only be edited on the contact step; Back returns there.
func (f *Form) Set(field, value string) error {
	if err := f.editable(field); err != nil {
		return err
	}
	f.assign(field, value)
	return nil
}

// SetAll edits several fields at once. Either every field is applied or, if
// any of them cannot be edited, none is.
func (f *Form) SetAll(fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if err := f.editable(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f.assign(name, fields[name])
	}
	return nil
}

func (f *Form) editable(field string) error {
	if f.step == StepSubmitted {
		return ErrFormSubmitted
	}
	switch field {
	case models.FieldName, models.FieldEmail, models.FieldPhone, models.FieldReason:
		if f.step != StepContact {
			return fmt.Errorf("%w: %q is edited on the %s step", ErrWrongStep, field, StepContact)
		}
	case models.FieldDate, models.FieldTime:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (f *Form) assign(field, value string) {
	switch field {
	case models.FieldName:
		f.draft.Name = value
	case models.FieldEmail:
		f.draft.Email = value
	case models.FieldPhone:
		f.draft.Phone = value
	case models.FieldDate:
		f.draft.Date = value
	case models.FieldTime:
		f.draft.Time = value
	case models.FieldReason:
		f.draft.Reason = value
	}
	delete(f.errors, field)
}

// Next advances from the contact step once its fields validate. On failure
// the form stays put and the returned *ValidationError lists the messages.
func (f *Form) Next() error {
	if f.step != StepContact {
		return fmt.Errorf("%w: next from %s", ErrWrongStep, f.step)
	}
	if err := f.gate(f.validator.Contact(f.draft)); err != nil {
		return err
	}
	f.step = StepSchedule
	return nil
}

// Back returns from the schedule step to the contact step keeping all values.
// It does nothing on the contact step.
func (f *Form) Back() error {
	switch f.step {
	case StepSubmitted:
		return ErrFormSubmitted
	case StepSchedule:
		f.step = StepContact
	}
	return nil
}

// Submit finalizes the schedule step into an AppointmentRecord.
func (f *Form) Submit() (models.AppointmentRecord, error) {
	switch f.step {
	case StepSubmitted:
		return models.AppointmentRecord{}, ErrFormSubmitted
	case StepContact:
		return models.AppointmentRecord{}, fmt.Errorf("%w: submit from %s", ErrWrongStep, f.step)
	}
	if err := f.gate(f.validator.Schedule(f.draft)); err != nil {
		return models.AppointmentRecord{}, err
	}

	rec := models.AppointmentRecord{
		AppointmentDraft:  f.draft,
		AppointmentNumber: minAppointmentNumber + f.rng.IntN(maxAppointmentNumber-minAppointmentNumber+1),
		WaitTime:          minWaitMinutes + f.rng.IntN(maxWaitMinutes-minWaitMinutes+1),
		Fee:               f.doctor.Fee,
	}
	f.record = &rec
	f.step = StepSubmitted
	return rec, nil
}

// gate replaces the error map with the outcome of a step validation.
func (f *Form) gate(err error) error {
	var verr *ValidationError
	switch {
	case err == nil:
		f.errors = map[string]string{}
		return nil
	case errors.As(err, &verr):
		f.errors = verr.Fields
		return &ValidationError{Fields: f.Errors()}
	default:
		return err
	}
}
