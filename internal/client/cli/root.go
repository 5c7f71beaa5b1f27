package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// restoreSession picks up the persisted active user, if any, so a returning
// user does not have to log in again.
func (a *App) restoreSession(ctx context.Context) {
	u, err := a.sessions.ActiveUser(ctx)
	if err != nil {
		log.Printf("error restoring session: %v", err)
		return
	}
	if u != nil {
		a.userName = u.Name
		log.Printf("Welcome back, %s!", u.Name)
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to EcoTrack CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
