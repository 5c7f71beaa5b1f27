package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ecotrack-app/ecotrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup fields and creates a new account, which
// becomes the active session. The password is collected for parity with the
// form but is not stored or verified anywhere.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	institution, err := getSimpleText(a.reader, "Enter your school or college", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.sessions.SignUp(ctx, name, email, institution, string(password))
	if err != nil {
		log.Printf("Signup unsuccessful: %s", err.Error())
		return err
	}

	a.userName = user.Name
	fmt.Printf("Welcome to EcoTrack, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and activates the matching account. A missing
// account is reported with a hint to sign up.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.sessions.LogIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("Account not found. Use 'register' to sign up.")
			return err
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = user.Name
	fmt.Printf("Logged in as %s\n", user.Name)
	return nil
}

// Logout clears the persisted active session; the roster is untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.LogOut(ctx); err != nil {
		log.Printf("Logout unsuccessful: %s", err.Error())
		return err
	}
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}
