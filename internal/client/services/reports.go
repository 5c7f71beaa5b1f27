package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/client/client"
	"github.com/ecotrack-app/ecotrack/internal/client/models"
	"github.com/ecotrack-app/ecotrack/internal/client/repositories/state"
	"github.com/ecotrack-app/ecotrack/internal/common"
	"github.com/ecotrack-app/ecotrack/internal/dbx"
)

// RejectedError reports that the verification endpoint declined the evidence.
// The reason is the endpoint-supplied free text, suitable for display.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "verification rejected: " + e.Reason
}

// SubmitRequest is a full report submission: the evidence plus the report
// fields the user filled in.
type SubmitRequest struct {
	Category    models.Category
	Title       string
	Description string
	Location    string
	Severity    models.Severity

	Image      io.Reader
	Latitude   *float64
	Longitude  *float64
	CapturedAt time.Time
}

// SubmitResult is the outcome of an accepted submission.
type SubmitResult struct {
	Report     models.Report
	Confidence float64
	Labels     []string
}

// Stats are the aggregates the dashboard and profile views render.
type Stats struct {
	TotalReports   int
	SolvedReports  int
	SolvedCashback int
}

// ReportService owns the report ledger and drives the verification
// submission protocol.
//
// Contract:
//   - List: ledger in storage order, most recent first; a missing or
//     unparseable store reads as empty.
//   - Append: prepend one record and persist the whole sequence. Ids are the
//     caller's responsibility; there is no deduplication.
//   - QuickVerify: submit evidence for a verdict without touching any local
//     state.
//   - Submit: validate, verify, and on acceptance append a verified report
//     and bump the active user's counters. A rejection or connectivity
//     failure leaves local state untouched.
type ReportService interface {
	List(ctx context.Context) ([]models.Report, error)
	Append(ctx context.Context, report models.Report) error
	Stats(ctx context.Context) (*Stats, error)
	QuickVerify(ctx context.Context, ev client.Evidence) (*client.Verdict, error)
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}

type reportService struct {
	db       *sql.DB
	verifier client.Verifier
}

// NewReportService constructs a ReportService bound to the given DB and
// verification client.
func NewReportService(db *sql.DB, verifier client.Verifier) ReportService {
	return &reportService{db: db, verifier: verifier}
}

// loadLedger reads the report ledger. A missing or unparseable document reads
// as an empty ledger rather than failing.
func loadLedger(ctx context.Context, repo state.Repository) ([]models.Report, error) {
	raw, err := repo.Get(ctx, common.ReportsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var reports []models.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, nil
	}
	return reports, nil
}

func saveLedger(ctx context.Context, repo state.Repository, reports []models.Report) error {
	raw, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return repo.Set(ctx, common.ReportsKey, raw)
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	return loadLedger(ctx, state.NewSQLiteRepository(s.db))
}

func (s *reportService) Append(ctx context.Context, report models.Report) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		reports, err := loadLedger(ctx, repo)
		if err != nil {
			return err
		}
		reports = append([]models.Report{report}, reports...)
		return saveLedger(ctx, repo, reports)
	})
}

func (s *reportService) Stats(ctx context.Context) (*Stats, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalReports:   len(reports),
		SolvedReports:  models.SolvedCount(reports),
		SolvedCashback: models.SolvedCashback(reports),
	}, nil
}

func (s *reportService) QuickVerify(ctx context.Context, ev client.Evidence) (*client.Verdict, error) {
	if ev.Image == nil {
		return nil, fmt.Errorf("%w: evidence image is required", common.ErrValidation)
	}
	return s.verifier.Verify(ctx, ev)
}

// validate rejects a submission before any network attempt is made.
func (req *SubmitRequest) validate() error {
	if _, err := models.ParseCategory(string(req.Category)); err != nil {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	if req.Image == nil {
		return fmt.Errorf("%w: evidence image is required", common.ErrValidation)
	}
	return nil
}

// Submit runs a single verification attempt end to end. On acceptance the new
// report is prepended to the ledger and, when a session is active, the user's
// totalReports/totalCashback counters advance in the same transaction. A
// submission without an active session still records the report; only the
// counter update is skipped.
func (s *reportService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	severity := req.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	verdict, err := s.verifier.Verify(ctx, client.Evidence{
		Image:      req.Image,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CapturedAt: req.CapturedAt,
	})
	if err != nil {
		return nil, err
	}
	if !verdict.Verified {
		return nil, &RejectedError{Reason: verdict.Reason}
	}

	report := models.NewReport(
		req.Category,
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Description),
		strings.TrimSpace(req.Location),
		severity,
		verdict.Labels,
	)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)

		reports, err := loadLedger(ctx, repo)
		if err != nil {
			return err
		}
		reports = append([]models.Report{report}, reports...)
		if err := saveLedger(ctx, repo, reports); err != nil {
			return err
		}

		if err := bumpCounters(ctx, repo, report.Cashback); err != nil && !errors.Is(err, common.ErrNoActiveSession) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Report: report, Confidence: verdict.Confidence, Labels: verdict.Labels}, nil
}

// bumpCounters advances the active user's aggregates for one accepted report.
func bumpCounters(ctx context.Context, repo state.Repository, cashback int) error {
	u, err := loadActiveUser(ctx, repo)
	if err != nil {
		return err
	}
	if u == nil {
		return common.ErrNoActiveSession
	}

	reports := u.TotalReports + 1
	total := u.TotalCashback + cashback
	_, err = applyActiveUserUpdate(ctx, repo, models.UserUpdate{
		TotalReports:  &reports,
		TotalCashback: &total,
	})
	return err
}
