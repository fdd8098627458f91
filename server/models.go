package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/syifan/goseth"

	"github.com/sarchlab/overview/timeline"
)

type modelRsp struct {
	Index int    `json:"index"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Rows  int    `json:"rows"`
}

func (s *Server) listModels(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	rsp := make([]modelRsp, 0, s.agg.ModelCount())
	for i, m := range s.agg.Models() {
		rsp = append(rsp, modelRsp{
			Index: i,
			ID:    m.ID(),
			Name:  m.DisplayName(),
			Count: m.Count(),
			Rows:  m.RowCount(),
		})
	}

	writeJSON(w, http.StatusOK, rsp)
}

func (s *Server) modelDetails(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	m := s.findModelOr404(w, mux.Vars(r)["index"])
	if m == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (s *Server) findModelOr404(w http.ResponseWriter, index string) *timeline.Model {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= s.agg.ModelCount() {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Model not found"))
		dieOnErr(err)

		return nil
	}

	return s.agg.Model(i)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(bytes)
	dieOnErr(err)
}
