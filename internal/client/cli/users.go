package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
	"github.com/dmitrijs2005/siteadmin/internal/client/guard"
	"github.com/dmitrijs2005/siteadmin/internal/client/models"
)

// usersView loads the list and prints it. On failure the previous list is
// printed.
func (a *App) usersView(ctx context.Context) error {
	err := a.users.List(ctx)
	a.printUsers()
	return err
}

func (a *App) printUsers() {
	users := a.users.Users()
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t\tUSERNAME\tNAME\tSEX\tBIRTHDAY\tADDRESS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t(%s)\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Initial(), u.Username, u.DisplayName(), models.Label(u.Sex), u.Birthday, u.Address)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d user(s)\n", len(users))
}

// inUsersView guards the actions of the users view. When the guard
// redirects, the redirect target is rendered instead and ok is false.
func (a *App) inUsersView(ctx context.Context) (ok bool, err error) {
	if a.enter(ctx, guard.ViewUsers) == guard.ViewUsers {
		return true, nil
	}
	fmt.Fprintln(a.out, msgLoginFirst)
	return false, a.loginView(ctx)
}

// Refresh reloads the users list.
func (a *App) Refresh(ctx context.Context) error {
	if ok, err := a.inUsersView(ctx); !ok {
		return err
	}
	return a.usersView(ctx)
}

// Edit opens the edit form for a listed user. Every field is offered with
// its current value. While the update fails the form stays open and can be
// filled in again.
func (a *App) Edit(ctx context.Context, rawID string) error {
	if ok, err := a.inUsersView(ctx); !ok {
		return err
	}

	user, found := a.users.Find(models.ID(rawID))
	if !found {
		fmt.Fprintf(a.out, "No listed user with id %s. Run 'refresh' to reload the list.\n", rawID)
		return nil
	}

	a.users.OpenEdit(user)
	form := forms.NewEditForm(user)
	for {
		if err := a.fill(form, form.Fields(), true); err != nil {
			a.users.CloseEdit()
			return err
		}

		answer, err := getSimpleText(a.reader, "Save changes? [y/N]", a.out)
		if err != nil || !yes(answer) {
			a.users.CloseEdit()
			fmt.Fprintln(a.out, "Edit cancelled.")
			return err
		}

		err = a.users.Update(ctx, forms.EditedUser(user.ID, form.Values()))
		if err == nil {
			a.printUsers()
			return nil
		}

		answer, rerr := getSimpleText(a.reader, "Edit again? [y/N]", a.out)
		if rerr != nil || !yes(answer) {
			a.users.CloseEdit()
			return err
		}
	}
}

// Delete asks for confirmation and deletes the user.
func (a *App) Delete(ctx context.Context, rawID string) error {
	if ok, err := a.inUsersView(ctx); !ok {
		return err
	}

	id := models.ID(rawID)
	label := rawID
	if u, found := a.users.Find(id); found {
		label = u.Username
	}

	a.confirm.Request(id, label)
	req, _ := a.confirm.Pending()

	answer, err := getSimpleText(a.reader, req.Prompt()+" [y/N]", a.out)
	if err != nil || !yes(answer) {
		a.confirm.Cancel()
		return err
	}

	if err := a.confirm.Confirm(ctx); err != nil {
		return err
	}
	a.printUsers()
	return nil
}
