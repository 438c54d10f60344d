package findgames

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/recommend"
)

const (
	MessageNoKeys          = "API keys are not configured on the server. The admin needs to set them up."
	MessageInvalidResponse = "The AI returned an invalid response. Please try again."
	messageServerError     = "An server error occurred: %v"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			writeJSONError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSONError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if opts.Recommender == nil {
			opts.Logger.Error("find games: no recommender configured")
			writeJSONError(w, http.StatusInternalServerError, MessageNoKeys)
			return
		}

		filters, err := decodeFilters(r, opts.MaxBodyBytes)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		games, err := opts.Recommender.Recommend(r.Context(), filters)
		if err != nil {
			code, msg := classify(err)
			opts.Logger.Error("find games failed", "status", code, "error", err)
			writeJSONError(w, code, msg)
			return
		}
		if games == nil {
			games = []model.GameResult{}
		}

		opts.Logger.Info("find games", "results", len(games), "device", filters.Device, "with_group", filters.WithGroup)
		writeJSON(w, http.StatusOK, games)
	})
}

func decodeFilters(r *http.Request, limit int64) (model.SearchFilters, error) {
	var filters model.SearchFilters
	if r.Body == nil {
		return filters, errors.New("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, limit))
	if err := dec.Decode(&filters); err != nil {
		return filters, fmt.Errorf("invalid search filters: %w", err)
	}
	return filters, nil
}

func classify(err error) (int, string) {
	var httpErr HTTPError
	switch {
	case errors.Is(err, recommend.ErrNoKeys):
		return http.StatusInternalServerError, MessageNoKeys
	case errors.Is(err, recommend.ErrInvalidResponse):
		return http.StatusInternalServerError, MessageInvalidResponse
	case errors.As(err, &httpErr) && httpErr != nil:
		return httpErr.StatusCode(), httpErr.Error()
	default:
		return http.StatusInternalServerError, fmt.Sprintf(messageServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	if w == nil {
		return
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	writeJSONError(w, code, http.StatusText(code))
}
