package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
	"github.com/dmitrijs2005/siteadmin/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// ask prompts for one field. With keep set, the current value is offered
// as the default and an empty answer keeps it.
func (a *App) ask(field, current string, keep bool) (string, error) {
	label := forms.Labels[field]
	if label == "" {
		label = field
	}
	if opts := forms.Options(field); opts != nil {
		names := make([]string, len(opts))
		for i, o := range opts {
			names[i] = models.Label(o)
		}
		label += " (" + strings.Join(names, "/") + ")"
	}
	offer := keep && current != ""

	var (
		v   string
		err error
	)
	switch {
	case forms.Secret(field):
		if offer {
			label += " (empty keeps current)"
		}
		v, err = getPassword(a.out, label)
	case field == forms.FieldMessage:
		v, err = getMultiline(a.reader, label, a.out)
	default:
		if offer {
			label += " [" + models.Label(current) + "]"
		}
		v, err = getSimpleText(a.reader, label, a.out)
	}
	if err != nil {
		return "", err
	}
	if v == "" && offer {
		return current, nil
	}
	if forms.Options(field) != nil {
		v = models.FromLabel(v)
	}
	return v, nil
}

func (a *App) fill(form *forms.Form, fields []string, keep bool) error {
	for _, name := range fields {
		v, err := a.ask(name, form.Value(name), keep)
		if err != nil {
			return err
		}
		form.Set(name, v)
	}
	return nil
}

// submitForm asks for every field and submits. While submission is
// rejected as invalid it prints the messages and asks again for the
// offending fields only.
func (a *App) submitForm(ctx context.Context, form *forms.Form, submit func(context.Context, *forms.Form) error) error {
	fields := form.Fields()
	for {
		if err := a.fill(form, fields, false); err != nil {
			return err
		}

		err := submit(ctx, form)
		if !errors.Is(err, forms.ErrInvalid) {
			return err
		}

		errs := form.Errors()
		fields = fields[:0:0]
		for _, name := range form.Fields() {
			if msg := errs[name]; msg != "" {
				fmt.Fprintf(a.out, "  %s: %s\n", forms.Labels[name], msg)
				fields = append(fields, name)
			}
		}
	}
}
