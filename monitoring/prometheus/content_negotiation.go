package prometheus

import (
	"bytes"
	"net/http"

	"github.com/golang/gddo/httputil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	contentTypePlainText = "text/plain"
	contentTypeJSON      = "application/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// generatedResponse is a container for response output. Text holds the plain
// text rendering, Data the structured one.
type generatedResponse struct {
	Data interface{}  `json:"data"`
	Text bytes.Buffer `json:"-"`
}

// negotiateContentType parses "Accept:" header and returns preferred content type string.
func negotiateContentType(r *http.Request) string {
	return httputil.NegotiateContentType(r, []string{contentTypePlainText, contentTypeJSON}, contentTypePlainText)
}

// writeResponse writes the rendering matching the request's Accept header.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, response *generatedResponse) error {
	if negotiateContentType(r) == contentTypeJSON {
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(response)
	}
	w.Header().Set("Content-Type", contentTypePlainText)
	w.WriteHeader(status)
	if _, err := w.Write(response.Text.Bytes()); err != nil {
		return errors.Wrap(err, "could not write response body")
	}
	return nil
}
