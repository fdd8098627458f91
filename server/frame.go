package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sarchlab/overview/canvas"
	"github.com/sarchlab/overview/overview"
)

// maxSurfaceSize bounds the width and height a request may ask for.
const maxSurfaceSize = 16384

type window struct {
	start, duration int64
}

func (w window) TraceStart() int64    { return w.start }
func (w window) TraceDuration() int64 { return w.duration }

// frame resolves the view range and surface of a request. By default the
// whole trace is shown; view=range shows the zoom window and start/end pick
// an explicit window.
func (s *Server) frame(r *http.Request) (overview.ViewRange, overview.Surface, error) {
	q := r.URL.Query()
	cfg := s.cfg

	var view overview.ViewRange = s.zoom
	if q.Get("view") == "range" {
		view = window{start: s.zoom.RangeStart(), duration: s.zoom.RangeDuration()}
	}

	if q.Has("start") || q.Has("end") {
		start, err := strconv.ParseInt(q.Get("start"), 10, 64)
		if err != nil {
			return nil, overview.Surface{}, errors.New("invalid start")
		}

		end, err := strconv.ParseInt(q.Get("end"), 10, 64)
		if err != nil {
			return nil, overview.Surface{}, errors.New("invalid end")
		}

		if end <= start {
			return nil, overview.Surface{}, errors.New("end must be after start")
		}

		view = window{start: start, duration: end - start}
	}

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
	} {
		if !q.Has(p.name) {
			continue
		}

		v, err := strconv.ParseFloat(q.Get(p.name), 64)
		if err != nil || !(v > 0 && v <= maxSurfaceSize) {
			return nil, overview.Surface{}, fmt.Errorf(
				"invalid %s, want a value in (0, %d]", p.name, maxSurfaceSize)
		}

		*p.dst = v
	}

	surface := cfg.Surface(view.TraceDuration(), s.agg.ModelCount())

	return view, surface, nil
}

func (s *Server) paint(r *http.Request, ctx func(overview.Surface) overview.Canvas) error {
	view, surface, err := s.frame(r)
	if err != nil {
		return err
	}

	s.renderer.BindViewRange(view)
	defer s.renderer.BindViewRange(s.zoom)

	s.renderer.Paint(surface, ctx(surface))

	return nil
}

func (s *Server) overviewSVG(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var svg *canvas.SVG

	err := s.paint(r, func(surface overview.Surface) overview.Canvas {
		svg = canvas.NewSVG(surface.Width, surface.Height)
		return svg
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, err = svg.WriteTo(w)
	dieOnErr(err)
}

func (s *Server) overviewCalls(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	if format != "json" && format != "msgpack" {
		http.Error(w,
			"Invalid format: "+format+". Allowed values are `json` and `msgpack`",
			http.StatusBadRequest)
		return
	}

	rec := canvas.NewRecorder()

	err := s.paint(r, func(overview.Surface) overview.Canvas { return rec })
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if format == "msgpack" {
		w.Header().Set("Content-Type", "application/msgpack")
		dieOnErr(rec.EncodeMsgpack(w))

		return
	}

	w.Header().Set("Content-Type", "application/json")
	dieOnErr(rec.EncodeJSON(w))
}
