package validate

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// Predicate reports whether a field value is acceptable.
type Predicate func(value string) bool

type rule struct {
	check   Predicate
	message string
}

type field struct {
	value string
	rules []rule
	err   string
}

// Form is a registry of per-field rules. Rules run in registration order and
// only the first failing rule of a field is reported.
type Form struct {
	fields map[string]*field
	order  []string
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{fields: make(map[string]*field)}
}

func (f *Form) field(name string) *field {
	fd, ok := f.fields[name]
	if !ok {
		fd = &field{}
		f.fields[name] = fd
		f.order = append(f.order, name)
	}
	return fd
}

// AddValidator registers check for the named field. message is reported when
// check returns false.
func (f *Form) AddValidator(name string, check Predicate, message string) {
	fd := f.field(name)
	fd.rules = append(fd.rules, rule{check: check, message: message})
}

// SetValue stores the current value of a field.
func (f *Form) SetValue(name, value string) {
	f.field(name).value = value
}

// Value returns the stored value of a field.
func (f *Form) Value(name string) string {
	if fd, ok := f.fields[name]; ok {
		return fd.value
	}
	return ""
}

// Fields returns the registered field names in registration order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Validate runs every field's rules and reports whether all passed.
func (f *Form) Validate() bool {
	valid := true
	for _, name := range f.order {
		if !f.ValidateField(name) {
			valid = false
		}
	}
	return valid
}

// ValidateField runs the rules of a single field.
func (f *Form) ValidateField(name string) bool {
	fd, ok := f.fields[name]
	if !ok {
		return true
	}

	fd.err = ""
	for _, r := range fd.rules {
		if !r.check(fd.value) {
			fd.err = r.message
			return false
		}
	}
	return true
}

// Error returns the message recorded for a field by the last validation, or
// an empty string.
func (f *Form) Error(name string) string {
	if fd, ok := f.fields[name]; ok {
		return fd.err
	}
	return ""
}

// Err returns the recorded messages as criterio field errors, or nil when the
// last validation passed.
func (f *Form) Err() error {
	var errs criterio.FieldErrorsBuilder
	for _, name := range f.order {
		if msg := f.fields[name].err; msg != "" {
			errs = errs.Append(name, errors.New(msg))
		}
	}
	return errs.ToError()
}

// Reset clears recorded messages. Values are kept.
func (f *Form) Reset() {
	for _, fd := range f.fields {
		fd.err = ""
	}
}

// Clear empties every value and recorded message.
func (f *Form) Clear() {
	for _, fd := range f.fields {
		fd.value = ""
		fd.err = ""
	}
}
