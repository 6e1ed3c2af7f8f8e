// Package forms holds field values and per-field errors of an input form,
// validates them on submit and clears a field's error as soon as it is
// edited.
package forms

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// ErrInvalid is returned by Submit when validation fails; the field messages
// are available from (*Form).Errors.
var ErrInvalid = errors.New("form has invalid fields")

// Values maps field name to current value.
type Values map[string]string

// Errors maps field name to its validation message. A field with no entry,
// or an empty one, is valid.
type Errors map[string]string

// Rule attaches checks to a field. Checks run in order and every failing
// check overwrites the message of the ones before it, so the last failing
// check decides what the user sees.
type Rule struct {
	Field  string
	Checks []Check
}

func Field(name string, checks ...Check) Rule {
	return Rule{Field: name, Checks: checks}
}

type Form struct {
	mu         sync.Mutex
	fields     []string
	rules      []Rule
	values     Values
	errors     Errors
	submitting bool
}

// New creates an empty form with the given fields, in display order.
func New(fields []string, rules ...Rule) *Form {
	f := &Form{fields: fields, rules: rules}
	f.values = f.empty()
	f.errors = Errors{}
	return f
}

func (f *Form) empty() Values {
	v := make(Values, len(f.fields))
	for _, name := range f.fields {
		v[name] = ""
	}
	return v
}

// Fields returns the field names in display order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.fields...)
}

// Set updates a field and clears its error, if it has one. Errors are not
// re-validated until the next submit.
func (f *Form) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	if f.errors[name] != "" {
		delete(f.errors, name)
	}
}

func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// Errors returns the messages stored by the last failed submit, minus the
// fields edited since.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Validate runs every rule against the current values without touching the
// stored errors. The result is empty iff the form is valid.
func (f *Form) Validate() Errors {
	f.mu.Lock()
	values := maps.Clone(f.values)
	f.mu.Unlock()
	return validate(f.rules, values)
}

func validate(rules []Rule, values Values) Errors {
	errs := Errors{}
	for _, r := range rules {
		v := values[r.Field]
		for _, check := range r.Checks {
			if msg := check(v, values); msg != "" {
				errs[r.Field] = msg
			}
		}
	}
	return errs
}

// Reset empties every field and error.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.empty()
	f.errors = Errors{}
}

// Submit validates the form. When invalid it stores the errors and returns
// ErrInvalid without calling fn. Otherwise it marks the form submitting,
// calls fn with a copy of the values and clears the flag however fn ends;
// a nil result from fn resets the form. fn's error is returned unchanged.
func (f *Form) Submit(ctx context.Context, fn func(ctx context.Context, values Values) error) error {
	f.mu.Lock()
	values := maps.Clone(f.values)
	errs := validate(f.rules, values)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return ErrInvalid
	}
	f.errors = Errors{}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := fn(ctx, values); err != nil {
		return err
	}

	f.Reset()
	return nil
}
