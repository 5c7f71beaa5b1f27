package client

import (
	"context"
	"io"
	"time"
)

// Evidence is one captured submission: the image stream plus optional
// geolocation and capture timestamp.
type Evidence struct {
	// Image is the photographic evidence. Required.
	Image io.Reader

	// Latitude and Longitude are the capture coordinates, when known.
	Latitude  *float64
	Longitude *float64

	// CapturedAt is the device capture time. The zero value means "now":
	// the submission time is sent instead.
	CapturedAt time.Time
}

// Verdict is the endpoint's decision, decoded defensively: any status other
// than "verified" (including unrecognized ones) yields Verified == false with
// a reason.
type Verdict struct {
	Verified   bool
	Confidence float64
	Labels     []string
	Reason     string
}

// Verifier submits evidence for verification and probes endpoint liveness.
//
// All methods must honor context cancellation/timeouts. Verify performs a
// single attempt: no retries, no idempotency key, so resubmitting after a
// transient failure may produce a second accepted verification.
type Verifier interface {
	Verify(ctx context.Context, ev Evidence) (*Verdict, error)
	Ping(ctx context.Context) error
}
