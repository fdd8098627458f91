package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sarchlab/overview/timeline"
)

type noteRsp struct {
	timeline.Note

	// Model is the display position of the lane, or -1 if the lane is gone.
	Model int `json:"model"`
}

type createNoteReq struct {
	Model int    `json:"model"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type updateNoteReq struct {
	Text string `json:"text"`
}

func (s *Server) listNotes(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	notes := s.agg.Notes().All()

	rsp := make([]noteRsp, 0, len(notes))
	for _, n := range notes {
		rsp = append(rsp, noteRsp{
			Note:  n,
			Model: s.agg.ModelIndexFromID(n.TimelineModel),
		})
	}

	writeJSON(w, http.StatusOK, rsp)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	req := createNoteReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid note: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Model < 0 || req.Model >= s.agg.ModelCount() ||
		req.Index < 0 || req.Index >= s.agg.Count(req.Model) {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	if req.Text == "" {
		http.Error(w, "Note text must not be empty", http.StatusBadRequest)
		return
	}

	id := s.agg.SetNoteText(req.Model, req.Index, req.Text)
	note, _ := s.agg.Notes().ByID(id)

	writeJSON(w, http.StatusCreated, noteRsp{Note: note, Model: req.Model})
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := mux.Vars(r)["id"]

	req := updateNoteReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid note: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := s.agg.Notes().Update(id, req.Text)
	if errors.Is(err, timeline.ErrNoteNotFound) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	note, ok := s.agg.Notes().ByID(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, noteRsp{
		Note:  note,
		Model: s.agg.ModelIndexFromID(note.TimelineModel),
	})
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.agg.Notes().Remove(mux.Vars(r)["id"]) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
