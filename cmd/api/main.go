package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"callgrader-go/internal/config"
	"callgrader-go/internal/logger"
	"callgrader-go/internal/source"
	"callgrader-go/internal/transcript"
)

const maxPayloadBytes = 10 << 20

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "callgrader-api").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// format endpoint: POST the raw transcript JSON, or pass ?url= to fetch it
	mux.HandleFunc("/format", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "format")
		reqLog.Info("format request received")

		var payload []byte
		if u := r.URL.Query().Get("url"); u != "" {
			var ferr error
			payload, ferr = source.Read(u)
			if ferr != nil {
				reqLog.WithError(ferr).Warn("payload fetch failed")
				http.Error(w, "could not fetch transcript payload", http.StatusBadGateway)
				return
			}
		} else {
			if r.Method != http.MethodPost {
				http.Error(w, "POST a transcript JSON payload or pass ?url=", http.StatusMethodNotAllowed)
				return
			}
			body, rerr := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
			if rerr != nil {
				http.Error(w, "could not read request body", http.StatusBadRequest)
				return
			}
			payload = body
		}

		start := time.Now()
		schema := transcript.Detect(payload)
		facts, turns, err := transcript.Extract(payload, schema)
		if err != nil {
			if errors.Is(err, transcript.ErrMalformedPayload) {
				reqLog.WithError(err).Warn("malformed payload")
				http.Error(w, "invalid transcript JSON", http.StatusBadRequest)
				return
			}
			reqLog.WithError(err).Error("extraction failed")
			http.Error(w, "could not process transcript", http.StatusInternalServerError)
			return
		}
		text := transcript.Assemble(facts, turns)

		reqLog.WithField("schema", string(schema)).
			WithField("turns", len(turns)).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("transcript formatted")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Suggested-Filename", transcript.SuggestedFilename(facts)+".txt")
		fmt.Fprint(w, text)
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      recovered(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// recovered keeps a panicking handler from taking down the process; the
// client gets a generic error instead.
func recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.New().WithRequest(r).WithField("panic", rec).Error("handler panicked")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
