// Package client talks to the external AI verification endpoint and owns the
// local database bootstrap. The endpoint is an opaque HTTP service: evidence
// goes out as a multipart form, the verdict comes back as JSON.
package client
