package cli

import (
	"context"

	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
)

func (a *App) contactView(ctx context.Context) error {
	return a.submitForm(ctx, forms.NewContactForm(), a.contact.Send)
}
