// Package handlers provides HTTP handlers for the seqstat API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/seqstat-go/internal/parser"
	"github.com/aria-lang/seqstat-go/internal/report"
	"github.com/aria-lang/seqstat-go/pkg/seqstat"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string           `json:"error"`
	Dropped *seqstat.Dropped `json:"dropped,omitempty"`
}

// Register mounts the API routes on r.
func Register(r chi.Router, logger *log.Logger, maxBodyBytes int64) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/stats/{format}", StatsHandler(logger, maxBodyBytes))
	})
}

// StatsHandler analyzes a raw FASTA or FASTQ request body.
//
// The format path parameter accepts fasta, fa, fastq or fq. Query
// parameters min_length and max_length set the length filter (max_length 0
// or absent means unbounded). records=true adds per-record GC entries and
// sequences=true adds sequences and qualities.
func StatsHandler(logger *log.Logger, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := seqstat.ParseFormat(chi.URLParam(r, "format"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		q := r.URL.Query()
		filter := seqstat.Filter{}
		if filter.MinLength, err = intParam(q.Get("min_length")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid min_length", nil)
			return
		}
		if filter.MaxLength, err = intParam(q.Get("max_length")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid max_length", nil)
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		a, err := seqstat.Analyze(body, kind, filter)
		if err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				logger.Error("analysis failed", "format", kind, "err", err)
			}
			writeError(w, status, err.Error(), nil)
			return
		}

		logger.Info("analyzed request",
			"format", kind,
			"records", len(a.Records),
			"filtered", a.Dropped.Filtered,
			"empty", a.Dropped.Empty)
		if a.Dropped.Malformed > 0 {
			logger.Warn("dropped malformed FASTQ records", "count", a.Dropped.Malformed)
		}

		if a.Empty() {
			writeError(w, http.StatusUnprocessableEntity, "no records: collection is empty", &a.Dropped)
			return
		}

		opts := report.Options{
			InputName:         q.Get("name"),
			Filter:            filter,
			ShowGCPerSequence: q.Get("records") == "true",
			ShowSequences:     q.Get("sequences") == "true",
		}
		if opts.InputName == "" {
			opts.InputName = "request"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report.NewDocument(a.Records, a.Summary, opts))
	}
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func statusFor(err error) int {
	var (
		filterErr *parser.InvalidFilterError
		tooLarge  *http.MaxBytesError
		ioErr     *parser.IOError
	)
	switch {
	case errors.As(err, &filterErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &ioErr) && ioErr.Op == "decode":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string, dropped *seqstat.Dropped) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Dropped: dropped})
}
