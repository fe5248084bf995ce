package dto

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/go-playground/validator/v10"
)

// Field error messages shown next to form inputs.
const (
	MsgRequired      = "This field is required."
	MsgInvalidDate   = "Enter a valid date."
	MsgInvalidTime   = "Enter a valid time."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."

	msgMaxLength       = "Ensure this value has at most %d characters (it has %d)."
	msgUnknownChoice   = "Select a valid choice. %s is not one of the available choices."
	msgInvalidPKFormat = "%q is not a valid value."
)

var validate = validator.New()

// FieldErrors maps a form field name to its error message. It implements
// error so services can hand reference failures back through the usual
// error return.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// Err returns fe as an error, or nil when there are none.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// UnknownChoice is the message for an id that passed parsing but does not
// exist in the store.
func UnknownChoice(id uint) string {
	return fmt.Sprintf(msgUnknownChoice, strconv.FormatUint(uint64(id), 10))
}

func cleanText(errs FieldErrors, field, raw string, max int) string {
	v := strings.TrimSpace(raw)
	if err := validate.Var(v, "required"); err != nil {
		errs.Add(field, MsgRequired)
		return v
	}
	if max > 0 {
		if err := validate.Var(v, "max="+strconv.Itoa(max)); err != nil {
			errs.Add(field, fmt.Sprintf(msgMaxLength, max, utf8.RuneCountInString(v)))
		}
	}
	return v
}

func cleanEmail(errs FieldErrors, field, raw string, max int) string {
	v := cleanText(errs, field, raw, max)
	if errs.Has(field) {
		return v
	}
	if err := validate.Var(v, "email"); err != nil {
		errs.Add(field, MsgInvalidEmail)
	}
	return v
}

func cleanDate(errs FieldErrors, field, raw string) time.Time {
	v := strings.TrimSpace(raw)
	if v == "" {
		errs.Add(field, MsgRequired)
		return time.Time{}
	}
	d, err := time.Parse(models.DateLayout, v)
	if err != nil {
		errs.Add(field, MsgInvalidDate)
		return time.Time{}
	}
	return d
}

var timeLayouts = []string{"15:04", "15:04:05"}

// cleanTime accepts HH:MM or HH:MM:SS and normalises to HH:MM.
func cleanTime(errs FieldErrors, field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		errs.Add(field, MsgRequired)
		return ""
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(models.TimeLayout)
		}
	}
	errs.Add(field, MsgInvalidTime)
	return ""
}

func cleanChoice(errs FieldErrors, field, raw string) uint {
	v := strings.TrimSpace(raw)
	if v == "" {
		errs.Add(field, MsgRequired)
		return 0
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		errs.Add(field, MsgInvalidChoice)
		return 0
	}
	return uint(id)
}

// cleanMultiChoice parses an optional list of ids, dropping blanks and
// duplicates while keeping the submitted order.
func cleanMultiChoice(errs FieldErrors, field string, raw []string) []uint {
	ids := make([]uint, 0, len(raw))
	seen := make(map[uint]struct{}, len(raw))
	for _, r := range raw {
		v := strings.TrimSpace(r)
		if v == "" {
			continue
		}
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			errs.Add(field, fmt.Sprintf(msgInvalidPKFormat, v))
			continue
		}
		if _, dup := seen[uint(id)]; dup {
			continue
		}
		seen[uint(id)] = struct{}{}
		ids = append(ids, uint(id))
	}
	return ids
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func idStrings(ids []uint) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = idString(id)
	}
	return out
}

func containsID(values []string, id uint) bool {
	want := idString(id)
	for _, v := range values {
		if strings.TrimSpace(v) == want {
			return true
		}
	}
	return false
}
