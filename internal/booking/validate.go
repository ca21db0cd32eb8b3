package booking

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"doctor-booking-server/internal/models"
)

var simpleEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidationError carries one inline message per failing form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

type contactStep struct {
	Name   string `form:"name" validate:"notblank"`
	Email  string `form:"email" validate:"notblank,simpleemail"`
	Phone  string `form:"phone" validate:"notblank"`
	Reason string `form:"reason" validate:"notblank"`
}

type scheduleStep struct {
	Date string `form:"date" validate:"required,bookingdate"`
	Time string `form:"time" validate:"required,timeslot"`
}

var requiredMessages = map[string]string{
	models.FieldName:   "Name is required",
	models.FieldEmail:  "Email is required",
	models.FieldPhone:  "Phone number is required",
	models.FieldReason: "Reason for visit is required",
	models.FieldDate:   "Date is required",
	models.FieldTime:   "Time is required",
}

// Validator checks the two form steps. Date checks are relative to now.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator builds a Validator using now as the clock.
func NewValidator(now func() time.Time) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return simpleEmail.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return IsTimeSlot(fl.Field().String())
	}))
	must(v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		return InDateWindow(fl.Field().String(), now())
	}))

	return &Validator{validate: v, now: now}
}

// Contact validates the step-1 fields of a draft.
func (v *Validator) Contact(d models.AppointmentDraft) error {
	return v.check(contactStep{Name: d.Name, Email: d.Email, Phone: d.Phone, Reason: d.Reason})
}

// Schedule validates the step-2 fields of a draft.
func (v *Validator) Schedule(d models.AppointmentDraft) error {
	return v.check(scheduleStep{Date: d.Date, Time: d.Time})
}

func (v *Validator) check(step any) error {
	err := v.validate.Struct(step)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate step: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = v.message(fe)
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "simpleemail":
		return "Email is invalid"
	case "timeslot":
		return "Time slot is not available"
	case "bookingdate":
		first, last := DateWindow(v.now())
		return fmt.Sprintf("Date must be between %s and %s", first.Format(DateLayout), last.Format(DateLayout))
	}
	if msg, ok := requiredMessages[fe.Field()]; ok {
		return msg
	}
	return fe.Error()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
