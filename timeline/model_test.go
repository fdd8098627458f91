package timeline

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model", func() {
	var m *Model

	BeforeEach(func() {
		m = NewModel(7, "GPU[0].CU[0]", HeightUniform)
	})

	It("should keep ranges sorted by start", func() {
		Expect(m.Insert(50, 10, 0)).To(Equal(0))
		Expect(m.Insert(10, 10, 0)).To(Equal(0))
		Expect(m.Insert(30, 10, 0)).To(Equal(1))
		Expect(m.Insert(30, 5, 1)).To(Equal(2))
		m.Finalize()

		Expect(m.Count()).To(Equal(4))
		Expect(m.StartTime(0)).To(Equal(int64(10)))
		Expect(m.StartTime(1)).To(Equal(int64(30)))
		Expect(m.TypeID(2)).To(Equal(1))
		Expect(m.EndTime(3)).To(Equal(int64(60)))
	})

	It("should clamp negative durations", func() {
		m.Insert(10, -5, 0)
		m.Finalize()

		Expect(m.Duration(0)).To(Equal(int64(0)))
		Expect(m.EndTime(0)).To(Equal(int64(10)))
	})

	It("should compute nesting rows", func() {
		m.Insert(0, 100, 0)
		m.Insert(10, 10, 0)
		m.Insert(12, 5, 0)
		m.Insert(30, 10, 0)
		m.Insert(200, 10, 0)
		m.Finalize()

		Expect(m.Row(0)).To(Equal(0))
		Expect(m.Row(1)).To(Equal(1))
		Expect(m.Row(2)).To(Equal(2))
		Expect(m.Row(3)).To(Equal(1))
		Expect(m.Row(4)).To(Equal(0))
		Expect(m.RowCount()).To(Equal(3))
		Expect(m.Height()).To(Equal(3 * DefaultRowHeight))
	})

	It("should have one row when empty", func() {
		m.Finalize()

		Expect(m.IsEmpty()).To(BeTrue())
		Expect(m.RowCount()).To(Equal(1))
	})

	It("should find binding loops", func() {
		m.Insert(0, 100, 1)
		m.Insert(10, 50, 2)
		m.Insert(20, 10, 1)
		m.Insert(200, 10, 1)
		m.Finalize()

		Expect(m.BindingLoopDest(0)).To(Equal(-1))
		Expect(m.BindingLoopDest(1)).To(Equal(-1))
		Expect(m.BindingLoopDest(2)).To(Equal(0))
		Expect(m.BindingLoopDest(3)).To(Equal(-1))
	})

	It("should not report a loop for siblings of the same type", func() {
		m.Insert(0, 10, 1)
		m.Insert(10, 10, 1)
		m.Finalize()

		Expect(m.BindingLoopDest(1)).To(Equal(-1))
	})

	It("should scale heights by duration", func() {
		m = NewModel(0, "lane", HeightByDuration)
		m.Insert(0, 40, 0)
		m.Insert(50, 10, 0)
		m.Insert(70, 0, 0)
		m.Finalize()

		Expect(m.RelativeHeight(0)).To(Equal(1.0))
		Expect(m.RelativeHeight(1)).To(Equal(0.25))
		Expect(m.RelativeHeight(2)).To(Equal(0.0))
	})

	It("should use full height in uniform mode", func() {
		m.Insert(0, 40, 0)
		m.Insert(50, 10, 0)
		m.Finalize()

		Expect(m.RelativeHeight(1)).To(Equal(1.0))
	})

	It("should color by type", func() {
		m.Insert(0, 10, 0)
		m.Insert(10, 10, 1)
		m.Insert(20, 10, 72)
		m.Finalize()

		c0 := m.Color(0).(color.RGBA)
		Expect(c0.A).To(Equal(uint8(0xff)))
		Expect(c0.R).To(BeNumerically(">", c0.G))
		Expect(c0.G).To(Equal(c0.B))
		Expect(m.Color(1)).NotTo(Equal(m.Color(0)))
		Expect(m.Color(2)).To(Equal(m.Color(0)))
	})

	It("should search by time", func() {
		m.Insert(10, 5, 0)
		m.Insert(20, 5, 0)
		m.Insert(30, 5, 0)
		m.Finalize()

		Expect(m.FirstIndex(0)).To(Equal(0))
		Expect(m.FirstIndex(20)).To(Equal(1))
		Expect(m.FirstIndex(21)).To(Equal(2))
		Expect(m.FirstIndex(31)).To(Equal(3))
		Expect(m.LastIndex(10)).To(Equal(-1))
		Expect(m.LastIndex(25)).To(Equal(1))
		Expect(m.LastIndex(100)).To(Equal(2))
	})
})
