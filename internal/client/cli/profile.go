package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ecotrack-app/ecotrack/internal/client/models"
	"github.com/ecotrack-app/ecotrack/internal/common"
)

// Profile prints the active user's record.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.sessions.ActiveUser(ctx)
	if err != nil {
		log.Printf("error loading profile: %v", err)
		return err
	}
	if u == nil {
		fmt.Println("Not logged in.")
		return common.ErrNoActiveSession
	}

	fmt.Printf("Name:        %s\n", u.Name)
	fmt.Printf("Email:       %s\n", u.Email)
	fmt.Printf("Institution: %s\n", u.Institution)
	fmt.Printf("Joined:      %s\n", u.JoinedDate)
	fmt.Printf("Reports:     %d\n", u.TotalReports)
	fmt.Printf("Cashback:    %d\n", u.TotalCashback)
	fmt.Printf("Solved:      %d\n", u.SolvedReports)
	fmt.Printf("Certificates: %d\n", u.Certificates)
	return nil
}

// Update edits the active user's profile fields. A blank answer keeps the
// current value.
func (a *App) Update(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	institution, err := getSimpleText(a.reader, "New institution (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var upd models.UserUpdate
	if name != "" {
		upd.Name = &name
	}
	if institution != "" {
		upd.Institution = &institution
	}
	if upd.Name == nil && upd.Institution == nil {
		fmt.Println("Nothing to change.")
		return nil
	}

	u, err := a.sessions.UpdateActiveUser(ctx, upd)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Println("Not logged in.")
			return err
		}
		log.Printf("error updating profile: %v", err)
		return err
	}

	a.userName = u.Name
	fmt.Println("Profile updated.")
	return nil
}
