package timeline

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/overview/overview"
	"github.com/sarchlab/overview/trace"
)

var _ overview.DataProvider = (*Aggregator)(nil)

func makeLane(id int, name string, ranges ...Range) *Model {
	m := NewModel(id, name, HeightUniform)
	for _, r := range ranges {
		m.Insert(r.Start, r.Duration, r.TypeID)
	}

	m.Finalize()

	return m
}

var _ = Describe("Aggregator", func() {
	var agg *Aggregator

	BeforeEach(func() {
		agg = NewAggregator()
		agg.AddModel(makeLane(10, "a",
			Range{Start: 100, Duration: 50, TypeID: 0},
			Range{Start: 200, Duration: 20, TypeID: 1},
		))
		agg.AddModel(makeLane(20, "b",
			Range{Start: 50, Duration: 400, TypeID: 2},
		))
	})

	It("should report empty", func() {
		Expect(NewAggregator().IsEmpty()).To(BeTrue())

		empty := NewAggregator()
		empty.AddModel(makeLane(0, "x"))
		Expect(empty.IsEmpty()).To(BeTrue())
		Expect(empty.TraceDuration()).To(Equal(int64(0)))

		Expect(agg.IsEmpty()).To(BeFalse())
	})

	It("should forward to the lanes", func() {
		Expect(agg.ModelCount()).To(Equal(2))
		Expect(agg.Count(0)).To(Equal(2))
		Expect(agg.StartTime(0, 1)).To(Equal(int64(200)))
		Expect(agg.EndTime(1, 0)).To(Equal(int64(450)))
		Expect(agg.Duration(0, 0)).To(Equal(int64(50)))
		Expect(agg.RelativeHeight(0, 0)).To(Equal(1.0))
		Expect(agg.BindingLoopDest(0, 1)).To(Equal(-1))
		Expect(agg.Color(0, 1)).To(Equal(agg.Model(0).Color(1)))
	})

	It("should compute the trace extent", func() {
		Expect(agg.TraceStart()).To(Equal(int64(50)))
		Expect(agg.TraceEnd()).To(Equal(int64(450)))
		Expect(agg.TraceDuration()).To(Equal(int64(400)))
		Expect(agg.Height()).To(Equal(2 * DefaultRowHeight))
	})

	It("should map note lanes to display positions", func() {
		agg.SetNoteText(1, 0, "long frame")

		Expect(agg.NoteCount()).To(Equal(1))
		Expect(agg.NoteTimelineModel(0)).To(Equal(1))
		Expect(agg.NoteTimelineIndex(0)).To(Equal(0))

		agg.SwapModels(0, 1)

		Expect(agg.NoteTimelineModel(0)).To(Equal(0))
		Expect(agg.NoteText(0, 0)).To(Equal("long frame"))
		Expect(agg.NoteText(1, 0)).To(BeEmpty())
	})

	It("should create, update and remove notes by text", func() {
		id := agg.SetNoteText(0, 1, "first")
		Expect(id).NotTo(BeEmpty())

		Expect(agg.SetNoteText(0, 1, "second")).To(Equal(id))
		Expect(agg.NoteText(0, 1)).To(Equal("second"))
		Expect(agg.Notes().Count()).To(Equal(1))

		note, ok := agg.Notes().ByID(id)
		Expect(ok).To(BeTrue())
		Expect(note.TypeID).To(Equal(1))
		Expect(note.TimelineModel).To(Equal(10))

		Expect(agg.SetNoteText(0, 1, "")).To(BeEmpty())
		Expect(agg.Notes().Count()).To(Equal(0))
		Expect(agg.SetNoteText(0, 0, "")).To(BeEmpty())
		Expect(agg.Notes().Count()).To(Equal(0))
	})

	It("should invalidate notes whose range vanished on reload", func() {
		agg.SetNoteText(0, 0, "kept")
		agg.SetNoteText(0, 1, "type changed")
		agg.SetNoteText(1, 0, "lane gone")

		agg.SetModels([]*Model{
			makeLane(10, "a",
				Range{Start: 100, Duration: 50, TypeID: 0},
				Range{Start: 200, Duration: 20, TypeID: 5},
			),
		})

		Expect(agg.NoteTimelineIndex(0)).To(Equal(0))
		Expect(agg.NoteTimelineIndex(1)).To(Equal(-1))
		Expect(agg.NoteTimelineIndex(2)).To(Equal(-1))
		Expect(agg.NoteTimelineModel(2)).To(Equal(-1))
	})

	It("should render through the overview renderer", func() {
		r := overview.MakeBuilder().WithDataProvider(agg).Build()
		Expect(r.DataProvider()).To(BeIdenticalTo(agg))
	})
})

var _ = Describe("FromTasks", func() {
	It("should build one lane per location", func() {
		tasks := []trace.Task{
			{ID: "3", Kind: "req", What: "read", Where: "Mem", StartTime: 0.000002, EndTime: 0.000003},
			{ID: "1", Kind: "inst", What: "add", Where: "CU", StartTime: 0.000001, EndTime: 0.000004},
			{ID: "2", Kind: "inst", What: "add", Where: "CU", StartTime: 0.0000015, EndTime: 0.000002},
			{ID: "4", Kind: "inst", What: "mul", Where: "CU", StartTime: 0.000005, EndTime: 0.000005},
		}

		agg := FromTasks(tasks, Options{HeightMode: HeightByDuration})

		Expect(agg.ModelCount()).To(Equal(2))
		Expect(agg.Model(0).DisplayName()).To(Equal("CU"))
		Expect(agg.Model(1).DisplayName()).To(Equal("Mem"))
		Expect(agg.Model(1).ID()).To(Equal(1))

		cu := agg.Model(0)
		Expect(cu.Count()).To(Equal(3))
		Expect(cu.StartTime(0)).To(Equal(int64(1000)))
		Expect(cu.Duration(0)).To(Equal(int64(3000)))
		Expect(cu.StartTime(1)).To(Equal(int64(1500)))
		Expect(cu.TypeID(0)).To(Equal(0))
		Expect(cu.TypeID(2)).To(Equal(2))
		Expect(cu.Row(1)).To(Equal(1))
		Expect(cu.BindingLoopDest(1)).To(Equal(0))
		Expect(cu.RelativeHeight(1)).To(BeNumerically("~", 500.0/3000.0, 1e-12))

		Expect(agg.Model(1).TypeID(0)).To(Equal(1))
		Expect(agg.TraceStart()).To(Equal(int64(1000)))
		Expect(agg.TraceEnd()).To(Equal(int64(5000)))
	})

	It("should return an empty aggregator for no tasks", func() {
		agg := FromTasks(nil, Options{})

		Expect(agg.ModelCount()).To(Equal(0))
		Expect(agg.IsEmpty()).To(BeTrue())
	})
})
