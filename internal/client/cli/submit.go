package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ecotrack-app/ecotrack/internal/client/client"
	"github.com/ecotrack-app/ecotrack/internal/client/models"
	"github.com/ecotrack-app/ecotrack/internal/client/services"
	"github.com/ecotrack-app/ecotrack/internal/common"
)

// printSubmitError renders a submission failure as an inline message.
// Failures never propagate further than the triggering command.
func printSubmitError(err error) {
	var rejected *services.RejectedError
	switch {
	case errors.As(err, &rejected):
		fmt.Printf("Verification Failed: %s\n", rejected.Reason)
	case errors.Is(err, common.ErrValidation):
		fmt.Printf("Cannot submit: %s\n", err.Error())
	case errors.Is(err, common.ErrConnectivity):
		fmt.Println("Failed to connect to the verification server. Check your connection.")
	default:
		fmt.Printf("Error: %s\n", err.Error())
	}
}

// promptCoordinate reads an optional decimal coordinate; blank skips it.
func (a *App) promptCoordinate(prompt string) (*float64, error) {
	text, err := getSimpleText(a.reader, prompt+" (blank to skip)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Println("Not a number, skipping.")
		return nil, nil
	}
	return &v, nil
}

// Verify submits a photo for a quick verdict without filing a report.
// Nothing is persisted either way.
func (a *App) Verify(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to the photo", os.Stdout)
	if err != nil {
		return err
	}
	lat, err := a.promptCoordinate("Latitude")
	if err != nil {
		return err
	}
	lon, err := a.promptCoordinate("Longitude")
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Cannot open %s: %s\n", path, err.Error())
		return err
	}
	defer f.Close()

	verdict, err := a.reports.QuickVerify(ctx, client.Evidence{Image: f, Latitude: lat, Longitude: lon})
	if err != nil {
		printSubmitError(err)
		return err
	}

	if !verdict.Verified {
		fmt.Printf("Verification Failed: %s\n", verdict.Reason)
		return nil
	}

	fmt.Printf("Verified! (AI Confidence: %.1f%%). Photo matches the required environmental action.\n", verdict.Confidence*100)
	printLabels(verdict.Labels)
	return nil
}

// Report walks through the full submission form and files a verified report.
func (a *App) Report(ctx context.Context) error {
	if a.submitting {
		fmt.Println("A submission is already in progress.")
		return nil
	}

	ids := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		ids = append(ids, string(c))
	}

	catID, err := GetChoice(a.reader, "Category", ids, "", os.Stdout)
	if err != nil {
		return err
	}
	cat, err := models.ParseCategory(catID)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return err
	}
	severity, err := GetChoice(a.reader, "Severity",
		[]string{string(models.SeverityLow), string(models.SeverityMedium), string(models.SeverityHigh)},
		string(models.SeverityMedium), os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Path to the evidence photo", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Cannot open %s: %s\n", path, err.Error())
		return err
	}
	defer f.Close()

	a.submitting = true
	defer func() { a.submitting = false }()

	fmt.Println("Verifying with AI...")
	res, err := a.reports.Submit(ctx, services.SubmitRequest{
		Category:    cat,
		Title:       title,
		Description: description,
		Location:    location,
		Severity:    models.Severity(severity),
		Image:       f,
	})
	if err != nil {
		printSubmitError(err)
		return err
	}

	fmt.Printf("Report verified! You earned %d cashback points.\n", res.Report.Cashback)
	if res.Confidence > 0 {
		fmt.Printf("AI Confidence: %.1f%%\n", res.Confidence*100)
	}
	printLabels(res.Labels)
	return nil
}

func printLabels(labels []string) {
	if len(labels) == 0 {
		return
	}
	tags := make([]string, 0, len(labels))
	for _, l := range labels {
		tags = append(tags, "#"+strings.ReplaceAll(l, "_", " "))
	}
	fmt.Printf("Detected: %s\n", strings.Join(tags, " "))
}
