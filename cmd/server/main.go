// Command server exposes the noun mixer as a JSON REST API.
//
// Endpoints:
//
//	GET  /      liveness descriptor
//	POST /mix   body: {"recipient":"...","donor":"...","strength":0.7,"safe":false}
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/nounmixer-pl/mikser"
)

const (
	apiName    = "Noun Mixer (PL) API"
	apiVersion = 1
)

// ---- JSON request/response types ----------------------------------------

type mixRequest struct {
	Recipient string `json:"recipient"`
	Donor     string `json:"donor"`
	// Strength defaults to 1 when absent.
	Strength *float64 `json:"strength"`
	// Safe overrides the configured default policy when present.
	Safe *bool `json:"safe"`
}

type mixResponse struct {
	Result string `json:"result"`
}

type rootResponse struct {
	OK      bool   `json:"ok"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// truncateRunes clamps s to at most n characters (not bytes).
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func clampStrength(s float64) float64 {
	switch {
	case s != s || s < 0: // NaN or negative
		return 0
	case s > 1:
		return 1
	}
	return s
}

// ---- handlers -----------------------------------------------------------

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{OK: true, Name: apiName, Version: apiVersion})
}

func handleMix(mixer *mikser.Mixer, cfg Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req mixRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'recipient' and 'donor' fields")
			return
		}

		recipient := truncateRunes(req.Recipient, cfg.MaxTextLen)
		donor := truncateRunes(req.Donor, cfg.MaxTextLen)
		strength := 1.0
		if req.Strength != nil {
			strength = clampStrength(*req.Strength)
		}
		safe := cfg.SafeMode
		if req.Safe != nil {
			safe = *req.Safe
		}

		var result string
		if safe {
			result = mixer.MixSafe(recipient, donor, strength)
		} else {
			result = mixer.Mix(recipient, donor, strength)
		}

		logger.Info("mix",
			zap.Int("recipient_len", len(recipient)),
			zap.Int("donor_len", len(donor)),
			zap.Float64("strength", strength),
			zap.Bool("safe", safe))
		writeJSON(w, http.StatusOK, mixResponse{Result: result})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	lexicon := flag.String("lexicon", "", "path to lexicon file (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := DefaultConfig()
	if *configPath != "" {
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *lexicon != "" {
		cfg.LexiconPath = *lexicon
	}

	lex, err := mikser.NewLexicon(cfg.LexiconPath)
	if err != nil {
		logger.Fatal("load lexicon", zap.String("path", cfg.LexiconPath), zap.Error(err))
	}
	logger.Info("lexicon loaded",
		zap.String("path", cfg.LexiconPath),
		zap.Int("entries", lex.Entries()))

	mixer := mikser.NewMixer(lex)

	mux := http.NewServeMux()
	mux.HandleFunc("/mix", handleMix(mixer, cfg, logger))
	mux.HandleFunc("/", handleRoot)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler(mux)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
