package payloads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-datagen/internal/observe"
	"github.com/goliatone/go-datagen/internal/openapi/parser"
	"github.com/goliatone/go-datagen/pkg/rng"
	"github.com/goliatone/go-datagen/pkg/sampler"
)

type specRequest struct {
	URL      string `json:"url"`
	Document string `json:"document"`
}

type generateRequest struct {
	specRequest
	Operation string `json:"operation"`
	Seed      *int64 `json:"seed"`
}

type specResponse struct {
	Dialect    string             `json:"dialect"`
	Operations []parser.Operation `json:"operations"`
}

type generateResponse struct {
	Operation string `json:"operation"`
	Seed      int64  `json:"seed"`
	Payload   any    `json:"payload"`
}

// SpecHandler lists the operations of a posted specification document.
func SpecHandler(fns ...OptionFn) http.Handler {
	return SpecHandlerWithOptions(NewOptions(fns...))
}

func SpecHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		var req specRequest
		if !decodeRequest(w, r, &req, "/spec", started) {
			return
		}

		doc, ops, err := loadAndParse(r, opts, req)
		if err != nil {
			writeUserError(w, err, "/spec", started)
			return
		}

		writeResult(w, specResponse{
			Dialect:    string(doc.Dialect),
			Operations: ops,
		}, "/spec", started)

		opts.Logger.Info("listed specification operations",
			zap.String("request_id", requestID),
			zap.String("dialect", string(doc.Dialect)),
			zap.Int("operations", len(ops)),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
}

// GenerateHandler emits one sampled payload for a chosen operation.
func GenerateHandler(fns ...OptionFn) http.Handler {
	return GenerateHandlerWithOptions(NewOptions(fns...))
}

func GenerateHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		var req generateRequest
		if !decodeRequest(w, r, &req, "/generate", started) {
			return
		}

		doc, _, err := loadAndParse(r, opts, req.specRequest)
		if err != nil {
			writeUserError(w, err, "/generate", started)
			return
		}

		op, err := doc.FindOperation(req.Operation)
		if err != nil {
			writeUserError(w, err, "/generate", started)
			return
		}

		schema, err := doc.RequestBodySchema(op)
		if err != nil {
			writeUserError(w, err, "/generate", started)
			return
		}

		seed := opts.Now().UnixMilli()
		if req.Seed != nil {
			seed = *req.Seed
		}

		payload := sampler.New(doc.Root, rng.New(uint32(seed))).
			WithClock(opts.Now).
			Sample(schema)

		writeResult(w, generateResponse{
			Operation: op.ID,
			Seed:      seed,
			Payload:   payload,
		}, "/generate", started)

		opts.Logger.Info("generated payload",
			zap.String("request_id", requestID),
			zap.String("operation", op.ID),
			zap.Int64("seed", seed),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
}

// loadAndParse fetches or accepts the document, parses it, and checks
// that it exposes at least one operation.
func loadAndParse(r *http.Request, opts Options, req specRequest) (parser.Document, []parser.Operation, error) {
	raw, err := loadDocument(r.Context(), opts, req.URL, req.Document)
	if err != nil {
		return parser.Document{}, nil, err
	}

	doc, err := parser.Parse(r.Context(), raw)
	if err != nil {
		return parser.Document{}, nil, err
	}

	ops := doc.Operations()
	if len(ops) == 0 {
		return parser.Document{}, nil, parser.ErrNoOperations
	}
	return doc, ops, nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request, into any, route string, started time.Time) bool {
	if r == nil || r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), route, started)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), route, started)
		return false
	}
	return true
}

func writeUserError(w http.ResponseWriter, err error, route string, started time.Time) {
	code := http.StatusBadRequest
	if errors.Is(err, parser.ErrUnknownOperation) {
		code = http.StatusNotFound
	}
	writeError(w, code, err.Error(), route, started)
}

func writeError(w http.ResponseWriter, code int, message string, route string, started time.Time) {
	writeJSON(w, code, map[string]string{"error": message})
	observe.ObserveRequest(route, code, time.Since(started))
}

func writeResult(w http.ResponseWriter, value any, route string, started time.Time) {
	writeJSON(w, http.StatusOK, value)
	observe.ObserveRequest(route, http.StatusOK, time.Since(started))
}

func writeJSON(w http.ResponseWriter, code int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	enc.SetIndent("", "  ")
	_ = enc.Encode(value)
}
