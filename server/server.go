// Package server exposes chord labelling over HTTP.
package server

import (
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonfunc/model"
	"github.com/rs/cors"
)

const (
	maxMidiBytes       = 16 << 20
	sentryFlushTimeout = 2 * time.Second
)

// Saver persists analyses. *db.Store satisfies it.
type Saver interface {
	PutAnalysis(model.Analysis) error
}

type Config struct {
	DefaultKey       string
	DefaultVerbosity string
	Workers          int
	// nil disables ?store=true
	Store Saver
}

type Server struct {
	cfg Config
}

func NewRouter(cfg Config) http.Handler {
	s := &Server{cfg: cfg}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestTracking)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/label", s.handleLabel).Methods(http.MethodPost)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)

	sentryHandler := sentryhttp.New(sentryhttp.Options{
		Repanic: false,
		Timeout: sentryFlushTimeout,
	})
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(sentryHandler.Handle(router))
}
