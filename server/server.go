// Package server serves overview frames, display lists and the annotation and
// zoom state of a loaded trace over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"

	"github.com/sarchlab/overview/config"
	"github.com/sarchlab/overview/overview"
	"github.com/sarchlab/overview/timeline"
	"github.com/sarchlab/overview/zoom"
)

// Server owns one renderer and the state it draws. Requests are served one at
// a time against that state.
type Server struct {
	lock sync.Mutex

	cfg      config.Config
	agg      *timeline.Aggregator
	zoom     *zoom.Control
	renderer *overview.Renderer

	profileDuration time.Duration
	httpServer      *http.Server
}

// Builder can build Servers.
type Builder struct {
	cfg config.Config
	agg *timeline.Aggregator
}

// MakeBuilder creates a builder with the default config and no lanes.
func MakeBuilder() Builder {
	return Builder{
		cfg: config.Default(),
	}
}

// WithConfig sets the layout, palette and network settings.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithAggregator sets the lanes to serve.
func (b Builder) WithAggregator(agg *timeline.Aggregator) Builder {
	b.agg = agg
	return b
}

// Build creates the Server. It panics if the config is invalid.
func (b Builder) Build() *Server {
	palette, err := b.cfg.Palette()
	dieOnErr(err)

	clamp, err := b.cfg.NoteClampMode()
	dieOnErr(err)

	agg := b.agg
	if agg == nil {
		agg = timeline.NewAggregator()
	}

	zc := zoom.NewControl()
	zc.SetTrace(agg.TraceStart(), agg.TraceEnd())

	renderer := overview.MakeBuilder().
		WithDataProvider(agg).
		WithViewRange(zc).
		WithPalette(palette).
		WithNoteClamp(clamp).
		Build()

	return &Server{
		cfg:      b.cfg,
		agg:      agg,
		zoom:     zc,
		renderer: renderer,

		profileDuration: time.Second,
	}
}

// Router returns the routes of the server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/overview.svg", s.overviewSVG).Methods(http.MethodGet)
	r.HandleFunc("/api/overview/calls", s.overviewCalls).Methods(http.MethodGet)
	r.HandleFunc("/api/models", s.listModels).Methods(http.MethodGet)
	r.HandleFunc("/api/model/{index}", s.modelDetails).Methods(http.MethodGet)
	r.HandleFunc("/api/notes", s.listNotes).Methods(http.MethodGet)
	r.HandleFunc("/api/notes", s.createNote).Methods(http.MethodPost)
	r.HandleFunc("/api/notes/{id}", s.updateNote).Methods(http.MethodPut)
	r.HandleFunc("/api/notes/{id}", s.deleteNote).Methods(http.MethodDelete)
	r.HandleFunc("/api/zoom", s.getZoom).Methods(http.MethodGet)
	r.HandleFunc("/api/zoom", s.setZoom).Methods(http.MethodPost)
	r.HandleFunc("/api/resource", s.listResources).Methods(http.MethodGet)
	r.HandleFunc("/api/profile", s.collectProfile).Methods(http.MethodGet)

	return r
}

// Start listens on the configured address, or a random port if none is set,
// and serves in the background. It returns the URL of the overview frame.
func (s *Server) Start() string {
	addr := s.cfg.HTTP
	if addr == "" {
		addr = ":0"
	}

	listener, err := net.Listen("tcp", addr)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d/api/overview.svg",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Serving overview at %s\n", url)

	s.httpServer = &http.Server{Handler: s.Router()}

	go func() {
		err := s.httpServer.Serve(listener)
		if !errors.Is(err, http.ErrServerClosed) {
			dieOnErr(err)
		}
	}()

	if s.cfg.OpenBrowser {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("cannot open browser: %v", err)
		}
	}

	return url
}

// Shutdown stops a started server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
