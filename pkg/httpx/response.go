package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// Message is the single-message error body, {"msg": "..."}.
type Message struct {
	Msg string `json:"msg"`
}

// ErrorItem is one entry of an itemized error body.
type ErrorItem struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// Errors is the itemized error body, {"errors": [...]}.
type Errors struct {
	Errors []ErrorItem `json:"errors"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMsg writes {"msg": msg}.
func WriteMsg(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Message{Msg: msg})
}

// WriteErrors writes {"errors": items}.
func WriteErrors(w http.ResponseWriter, code int, items ...ErrorItem) {
	if items == nil {
		items = []ErrorItem{}
	}
	WriteJSON(w, code, Errors{Errors: items})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// ErrBadBody reports a request body that is not a single JSON value.
var ErrBadBody = errors.New("httpx: malformed JSON body")

// DecodeJSON reads one JSON value from the request body into v. An empty
// body leaves v untouched so validation can report the missing fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrBadBody, err)
	}
	return nil
}
