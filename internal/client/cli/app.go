package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/client/client"
	"github.com/ecotrack-app/ecotrack/internal/client/config"
	"github.com/ecotrack-app/ecotrack/internal/client/services"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	sessions services.SessionService
	reports  services.ReportService
	verifier client.Verifier
	userName string
	Mode     Mode
	reader   *bufio.Reader

	// submitting guards against launching a second submission while one is
	// in flight from this app instance.
	submitting bool
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	verifier := client.NewHTTPVerifier(c.VerifyEndpointAddr)

	return &App{
		config:   c,
		sessions: services.NewSessionService(db),
		reports:  services.NewReportService(db, verifier),
		verifier: verifier,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// StartOnlineStatusWatcher periodically probes the verification endpoint and
// flips the Mode indicator shown in the prompt. Submissions are attempted
// regardless of the indicator; it only tells the user what to expect.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.verifier.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
