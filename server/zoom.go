package server

import (
	"encoding/json"
	"net/http"
)

type zoomRsp struct {
	TraceStart int64 `json:"trace_start"`
	TraceEnd   int64 `json:"trace_end"`
	RangeStart int64 `json:"range_start"`
	RangeEnd   int64 `json:"range_end"`
	Locked     bool  `json:"locked"`
}

type zoomReq struct {
	Start  *int64 `json:"start,omitempty"`
	End    *int64 `json:"end,omitempty"`
	Locked *bool  `json:"locked,omitempty"`
	Reset  bool   `json:"reset,omitempty"`
}

func (s *Server) zoomState() zoomRsp {
	return zoomRsp{
		TraceStart: s.zoom.TraceStart(),
		TraceEnd:   s.zoom.TraceEnd(),
		RangeStart: s.zoom.RangeStart(),
		RangeEnd:   s.zoom.RangeEnd(),
		Locked:     s.zoom.WindowLocked(),
	}
}

func (s *Server) getZoom(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.zoomState())
}

func (s *Server) setZoom(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	req := zoomReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid zoom: "+err.Error(), http.StatusBadRequest)
		return
	}

	if (req.Start == nil) != (req.End == nil) {
		http.Error(w, "start and end must be set together", http.StatusBadRequest)
		return
	}

	if req.Reset {
		s.zoom.Reset()
	}

	if req.Start != nil {
		s.zoom.SetRange(*req.Start, *req.End)
	}

	if req.Locked != nil {
		s.zoom.SetWindowLocked(*req.Locked)
	}

	writeJSON(w, http.StatusOK, s.zoomState())
}
