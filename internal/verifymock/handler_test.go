package verifymock

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack-app/ecotrack/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewRouter(NewHandler(nopLogger{})))
	t.Cleanup(ts.Close)
	return ts
}

func postEvidence(t *testing.T, url string, image []byte, fields map[string]string) verdict {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if image != nil {
		part, err := w.CreateFormFile("file", "evidence.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	resp, err := http.Post(url+"/verify-action", w.FormDataContentType(), buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v verdict
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestVerifyAction_Verified(t *testing.T) {
	ts := newTestServer(t)

	v := postEvidence(t, ts.URL, []byte("jpegbytes"), map[string]string{
		"device_timestamp": "2025-06-01T10:00:00Z",
		"latitude":         "52.52",
	})

	assert.Equal(t, "verified", v.Status)
	assert.InDelta(t, 0.93, v.Confidence, 0.001)
	assert.Equal(t, cannedLabels, v.LabelsDetected)
}

func TestVerifyAction_EmptyFile(t *testing.T) {
	ts := newTestServer(t)

	v := postEvidence(t, ts.URL, []byte{}, nil)

	assert.Equal(t, "rejected", v.Status)
	assert.Equal(t, "No environmental elements detected.", v.Reason)
}

func TestVerifyAction_MissingFile(t *testing.T) {
	ts := newTestServer(t)

	v := postEvidence(t, ts.URL, nil, map[string]string{"device_timestamp": "2025-06-01T10:00:00Z"})

	assert.Equal(t, "rejected", v.Status)
}

func TestVerifyAction_RejectOverride(t *testing.T) {
	ts := newTestServer(t)

	v := postEvidence(t, ts.URL, []byte("jpegbytes"), map[string]string{"reject": "Fraud Alert: Same physical object detected."})

	assert.Equal(t, "rejected", v.Status)
	assert.Equal(t, "Fraud Alert: Same physical object detected.", v.Reason)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/verify-action")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
