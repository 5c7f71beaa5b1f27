package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/common"
)

// evidenceFilename is the fixed filename sent in the multipart form.
const evidenceFilename = "evidence.jpg"

// HTTPVerifier implements Verifier against a fixed endpoint URL. No
// authentication header and no request signing; timeouts are whatever the
// default transport provides, so callers should bound calls via the context.
type HTTPVerifier struct {
	endpointURL string
	httpClient  *http.Client
}

// NewHTTPVerifier returns an HTTPVerifier posting to the given URL.
func NewHTTPVerifier(endpointURL string) *HTTPVerifier {
	return &HTTPVerifier{endpointURL: endpointURL, httpClient: &http.Client{}}
}

// verdictResponse mirrors the endpoint's JSON body.
type verdictResponse struct {
	Status         string   `json:"status"`
	Confidence     float64  `json:"confidence"`
	LabelsDetected []string `json:"labels_detected"`
	Reason         string   `json:"reason"`
}

// Verify posts the evidence as a multipart form and decodes the verdict.
// Transport failures and undecodable responses are reported as
// common.ErrConnectivity; a decoded non-"verified" status is not an error
// but a Verdict with Verified == false.
func (v *HTTPVerifier) Verify(ctx context.Context, ev Evidence) (*Verdict, error) {
	body, contentType, err := buildForm(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpointURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	var vr verdictResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("%w: undecodable response: %v", common.ErrConnectivity, err)
	}

	if vr.Status == "verified" {
		return &Verdict{Verified: true, Confidence: vr.Confidence, Labels: vr.LabelsDetected}, nil
	}

	reason := vr.Reason
	if reason == "" {
		reason = "verification was not successful"
	}
	return &Verdict{Verified: false, Reason: reason}, nil
}

// Ping checks endpoint reachability. Any HTTP response counts as reachable;
// only a transport-level failure reports common.ErrConnectivity.
func (v *HTTPVerifier) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpointURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConnectivity, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// buildForm assembles the multipart body: the image as "file" with a fixed
// jpeg filename, "device_timestamp" in RFC3339, and optional decimal-string
// coordinates.
func buildForm(ev Evidence) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+evidenceFilename+`"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, ev.Image); err != nil {
		return nil, "", err
	}

	ts := ev.CapturedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	if err := w.WriteField("device_timestamp", ts.Format(time.RFC3339)); err != nil {
		return nil, "", err
	}

	if ev.Latitude != nil {
		if err := w.WriteField("latitude", strconv.FormatFloat(*ev.Latitude, 'f', -1, 64)); err != nil {
			return nil, "", err
		}
	}
	if ev.Longitude != nil {
		if err := w.WriteField("longitude", strconv.FormatFloat(*ev.Longitude, 'f', -1, 64)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
