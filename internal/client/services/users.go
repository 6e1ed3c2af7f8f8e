package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/siteadmin/internal/client/client"
	"github.com/dmitrijs2005/siteadmin/internal/client/models"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

// UserService is the users view: the last listing fetched from the API, the
// loading flag and the single open edit form.
//
// The list is only ever replaced by a full listing. When several listings
// are in flight the one that completes last wins.
type UserService struct {
	client client.Client
	notes  notify.Notifier
	log    logging.Logger

	mu       sync.Mutex
	users    []models.User
	inflight int
	editing  *models.User
}

func NewUserService(c client.Client, n notify.Notifier, log logging.Logger) *UserService {
	return &UserService{client: c, notes: n, log: log.With("service", "users")}
}

// Users returns a copy of the current list.
func (s *UserService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

// Loading reports whether a listing is in flight.
func (s *UserService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Find returns the listed user with the given id.
func (s *UserService) Find(id models.ID) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// List fetches all users and replaces the list. On failure the previous list
// stays and an error notification is shown.
func (s *UserService) List(ctx context.Context) error {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()

	users, err := s.client.ListUsers(ctx)

	s.mu.Lock()
	s.inflight--
	if err == nil {
		s.users = users
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error(ctx, "list users failed", "error", err)
		if answered(err) {
			s.notes.Show(notify.KindError, userTitle(err), MsgLoadFailed)
		} else {
			s.notes.Show(notify.KindError, TitleConnection, MsgUnreachable)
		}
		return err
	}

	s.log.Debug(ctx, "users loaded", "count", len(users))
	return nil
}

// Remove deletes a user and, on success, lists again.
func (s *UserService) Remove(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		s.notes.Show(notify.KindError, TitleError, MsgMissingID)
		return ErrMissingID
	}

	if err := s.client.DeleteUser(ctx, id); err != nil {
		reportFailure(ctx, s.notes, s.log, userTitle(err), "delete user", err, MsgDeleteFailed)
		return err
	}

	s.log.Info(ctx, "user deleted", "id", id)
	s.notes.Show(notify.KindSuccess, TitleDeleted, MsgDeleted)
	return s.List(ctx)
}

// Update sends the full user, id included. On success the edit form is
// closed and the list fetched again; on failure the form stays open.
func (s *UserService) Update(ctx context.Context, user models.User) error {
	if user.ID.IsZero() {
		s.notes.Show(notify.KindError, TitleError, MsgMissingID)
		return ErrMissingID
	}

	if err := s.client.UpdateUser(ctx, user); err != nil {
		reportFailure(ctx, s.notes, s.log, userTitle(err), "update user", err, MsgUpdateFailed)
		return err
	}

	s.log.Info(ctx, "user updated", "id", user.ID)
	s.CloseEdit()
	s.notes.Show(notify.KindSuccess, TitleUpdated, MsgUpdated)
	return s.List(ctx)
}

// OpenEdit opens the edit form seeded from user, replacing any open one.
func (s *UserService) OpenEdit(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = &user
}

func (s *UserService) CloseEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
}

// Editing returns the user the edit form was opened for.
func (s *UserService) Editing() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return models.User{}, false
	}
	return *s.editing, true
}
