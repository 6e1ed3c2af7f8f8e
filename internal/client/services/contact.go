package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

// ContactService drives the contact form. There is no delivery backend:
// a valid message is accepted after a fixed delay.
type ContactService struct {
	notes notify.Notifier
	log   logging.Logger
	delay time.Duration
}

func NewContactService(n notify.Notifier, log logging.Logger, delay time.Duration) *ContactService {
	return &ContactService{notes: n, log: log.With("service", "contact"), delay: delay}
}

func (s *ContactService) Send(ctx context.Context, form *forms.Form) error {
	err := form.Submit(ctx, func(ctx context.Context, v forms.Values) error {
		msg := forms.ContactFrom(v)
		if err := s.deliver(ctx); err != nil {
			return err
		}
		s.log.Info(ctx, "contact message accepted", "email", msg.Email, "service", msg.Service)
		return nil
	})

	switch {
	case err == nil:
		s.notes.Show(notify.KindSuccess, TitleMessageSent, MsgThanks)
	case errors.Is(err, forms.ErrInvalid):
	default:
		s.log.Error(ctx, "send contact message failed", "error", err)
		s.notes.Show(notify.KindError, TitleError, MsgSendFailed)
	}
	return err
}

func (s *ContactService) deliver(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
