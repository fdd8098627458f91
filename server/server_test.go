package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/overview/canvas"
	"github.com/sarchlab/overview/config"
	"github.com/sarchlab/overview/timeline"
	"github.com/sarchlab/overview/trace"
)

func sampleTasks() []trace.Task {
	return []trace.Task{
		{ID: "1", Kind: "inst", What: "add", Where: "CU", StartTime: 0.000001, EndTime: 0.000004},
		{ID: "2", Kind: "inst", What: "add", Where: "CU", StartTime: 0.0000015, EndTime: 0.000002},
		{ID: "3", Kind: "req", What: "read", Where: "Mem", StartTime: 0.000002, EndTime: 0.000003},
		{ID: "4", Kind: "inst", What: "mul", Where: "CU", StartTime: 0.000005, EndTime: 0.000005},
	}
}

var _ = Describe("Server", func() {
	var (
		s      *Server
		router *mux.Router
	)

	do := func(method, url, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, url, strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		return rec
	}

	BeforeEach(func() {
		s = MakeBuilder().
			WithConfig(config.Default()).
			WithAggregator(timeline.FromTasks(sampleTasks(), timeline.Options{})).
			Build()
		router = s.Router()
	})

	It("should set the zoom to the whole trace", func() {
		Expect(s.zoom.TraceStart()).To(Equal(int64(1000)))
		Expect(s.zoom.TraceEnd()).To(Equal(int64(5000)))
	})

	It("should serve an svg frame", func() {
		rec := do(http.MethodGet, "/api/overview.svg?width=400&height=100", "")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("image/svg+xml"))
		Expect(rec.Body.String()).To(HavePrefix("<svg"))
		Expect(rec.Body.String()).To(ContainSubstring(`width="400" height="100"`))
		Expect(rec.Body.String()).To(ContainSubstring("<rect"))
	})

	It("should reject malformed frame parameters", func() {
		Expect(do(http.MethodGet, "/api/overview.svg?start=1", "").Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodGet, "/api/overview.svg?start=10&end=5", "").Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodGet, "/api/overview.svg?width=-3", "").Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodGet, "/api/overview.svg?width=NaN", "").Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should reject oversized surfaces", func() {
		Expect(do(http.MethodGet, "/api/overview.svg?width=1e7", "").Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodGet, "/api/overview/calls?height=16385", "").Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodGet, "/api/overview.svg?width=16384&height=16384", "").Code).
			To(Equal(http.StatusOK))
	})

	It("should serve the display list as json", func() {
		rec := do(http.MethodGet, "/api/overview/calls", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		calls, err := canvas.DecodeJSON(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls.Count(canvas.OpFillRect)).To(Equal(7))
		Expect(calls.Count(canvas.OpArc)).To(Equal(1))
	})

	It("should serve the display list as msgpack", func() {
		rec := do(http.MethodGet, "/api/overview/calls?format=msgpack", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/msgpack"))

		calls, err := canvas.DecodeMsgpack(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls.Count(canvas.OpArc)).To(Equal(1))
	})

	It("should reject unknown display list formats", func() {
		rec := do(http.MethodGet, "/api/overview/calls?format=xml", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should restore the zoom view range after a frame", func() {
		do(http.MethodGet, "/api/overview.svg?start=0&end=10", "")

		Expect(s.renderer.ViewRange()).To(BeIdenticalTo(s.zoom))
	})

	It("should render the zoom window on request", func() {
		do(http.MethodPost, "/api/zoom", `{"start": 1000, "end": 2000}`)

		rec := do(http.MethodGet, "/api/overview/calls?view=range", "")
		calls, err := canvas.DecodeJSON(rec.Body)
		Expect(err).NotTo(HaveOccurred())

		var texts []string
		for _, c := range calls.Commands {
			if c.Op == canvas.OpFillText {
				texts = append(texts, c.Text)
			}
		}
		Expect(texts).NotTo(BeEmpty())
		Expect(texts[0]).To(Equal("992 ns"))
	})

	It("should list models", func() {
		rec := do(http.MethodGet, "/api/models", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var models []modelRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &models)).To(Succeed())
		Expect(models).To(HaveLen(2))
		Expect(models[0].Name).To(Equal("CU"))
		Expect(models[0].Count).To(Equal(3))
		Expect(models[0].Rows).To(Equal(2))
	})

	It("should dump a model", func() {
		rec := do(http.MethodGet, "/api/model/1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))

		Expect(do(http.MethodGet, "/api/model/2", "").Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodGet, "/api/model/x", "").Code).To(Equal(http.StatusNotFound))
	})

	It("should manage notes", func() {
		before, err := canvas.DecodeJSON(do(http.MethodGet, "/api/overview/calls", "").Body)
		Expect(err).NotTo(HaveOccurred())

		rec := do(http.MethodPost, "/api/notes", `{"model": 1, "index": 0, "text": "slow read"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var created noteRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		Expect(created.ID).NotTo(BeEmpty())
		Expect(created.Model).To(Equal(1))
		Expect(created.TimelineModel).To(Equal(1))

		calls := do(http.MethodGet, "/api/overview/calls", "")
		rec2, err := canvas.DecodeJSON(calls.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec2.Count(canvas.OpLineTo)).To(Equal(before.Count(canvas.OpLineTo) + 2))

		rec = do(http.MethodPut, "/api/notes/"+created.ID, `{"text": "very slow read"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(s.agg.NoteText(1, 0)).To(Equal("very slow read"))

		rec = do(http.MethodGet, "/api/notes", "")
		var notes []noteRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &notes)).To(Succeed())
		Expect(notes).To(HaveLen(1))

		Expect(do(http.MethodDelete, "/api/notes/"+created.ID, "").Code).
			To(Equal(http.StatusNoContent))
		Expect(do(http.MethodDelete, "/api/notes/"+created.ID, "").Code).
			To(Equal(http.StatusNotFound))
		Expect(do(http.MethodPut, "/api/notes/"+created.ID, `{"text": "x"}`).Code).
			To(Equal(http.StatusNotFound))
	})

	It("should remove a note updated with empty text", func() {
		id := s.agg.SetNoteText(0, 0, "a")

		rec := do(http.MethodPut, "/api/notes/"+id, `{"text": ""}`)

		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(s.agg.NoteCount()).To(Equal(0))
	})

	It("should reject bad notes", func() {
		Expect(do(http.MethodPost, "/api/notes", `{`).Code).
			To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodPost, "/api/notes", `{"model": 5, "index": 0, "text": "a"}`).Code).
			To(Equal(http.StatusNotFound))
		Expect(do(http.MethodPost, "/api/notes", `{"model": 0, "index": 0, "text": ""}`).Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should get and set the zoom", func() {
		rec := do(http.MethodPost, "/api/zoom", `{"start": 1500, "end": 2500, "locked": true}`)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var z zoomRsp
		Expect(json.Unmarshal(rec.Body.Bytes(), &z)).To(Succeed())
		Expect(z.RangeStart).To(Equal(int64(1500)))
		Expect(z.RangeEnd).To(Equal(int64(2500)))
		Expect(z.Locked).To(BeTrue())

		do(http.MethodPost, "/api/zoom", `{"start": 3000, "end": 4000}`)
		rec = do(http.MethodGet, "/api/zoom", "")
		Expect(json.Unmarshal(rec.Body.Bytes(), &z)).To(Succeed())
		Expect(z.RangeStart).To(Equal(int64(1500)))

		do(http.MethodPost, "/api/zoom", `{"reset": true}`)
		rec = do(http.MethodGet, "/api/zoom", "")
		Expect(json.Unmarshal(rec.Body.Bytes(), &z)).To(Succeed())
		Expect(z.RangeStart).To(Equal(int64(1000)))
		Expect(z.RangeEnd).To(Equal(int64(5000)))
		Expect(z.Locked).To(BeFalse())

		Expect(do(http.MethodPost, "/api/zoom", `{"start": 1}`).Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should report resources", func() {
		rec := do(http.MethodGet, "/api/resource", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var r resourceRsp
		Expect(json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&r)).To(Succeed())
		Expect(r.MemorySize).To(BeNumerically(">", 0))
	})

	It("should collect a cpu profile", func() {
		s.profileDuration = 20 * time.Millisecond

		rec := do(http.MethodGet, "/api/profile", "")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"Period"`))
	})

	It("should serve an empty trace", func() {
		s = MakeBuilder().Build()
		router = s.Router()

		rec := do(http.MethodGet, "/api/overview/calls", "")
		calls, err := canvas.DecodeJSON(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls.Count(canvas.OpFillRect)).To(Equal(1))
	})
})
