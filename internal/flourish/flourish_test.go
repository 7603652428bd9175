package flourish_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/flourish"
	"github.com/san-kum/boxwave/internal/scene"
)

var _ = Describe("Flourish", func() {
	var (
		clk       *clock.Manual
		grid      *scene.Grid
		f         *flourish.Flourish
		completed atomic.Int32
		total     time.Duration
	)

	BeforeEach(func() {
		clk = clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		grid = scene.NewGrid(10, 2, colorful.Color{G: 1, B: 1}, colorful.Color{R: 1, G: 1, B: 1})
		completed.Store(0)
		f = flourish.New(flourish.Options{
			Duration:   flourish.DefaultDuration,
			Step:       flourish.DefaultStep,
			Clock:      clk,
			OnComplete: func() { completed.Add(1) },
		})
		total = f.Total(grid.Size())
	})

	It("starts idle", func() {
		Expect(f.State()).To(Equal(flourish.Idle))
		Expect(f.Busy()).To(BeFalse())
		Expect(f.Progress()).To(BeZero())
	})

	It("becomes busy immediately on trigger", func() {
		res, done := f.Trigger(context.Background(), grid)
		Expect(res).To(Equal(flourish.Started))
		Expect(done).NotTo(BeNil())
		Expect(f.Busy()).To(BeTrue())
	})

	It("stays busy until the last cell finishes", func() {
		_, done := f.Trigger(context.Background(), grid)

		clk.Advance(total - time.Millisecond)
		Consistently(f.Busy, 50*time.Millisecond, 5*time.Millisecond).Should(BeTrue())
		Expect(done).NotTo(BeClosed())

		clk.Advance(time.Millisecond)
		Eventually(done).Should(BeClosed())
		Expect(f.Busy()).To(BeFalse())
		Expect(f.Cycles()).To(Equal(uint64(1)))
		Expect(completed.Load()).To(Equal(int32(1)))
	})

	It("ignores triggers while animating", func() {
		_, done := f.Trigger(context.Background(), grid)
		clk.Advance(time.Second)
		Eventually(func() float64 { return grid.Cell(0).Rotation.X }).Should(BeNumerically(">", 0))
		mid := grid.Rotations()

		res, again := f.Trigger(context.Background(), grid)
		Expect(res).To(Equal(flourish.Skipped))
		Expect(again).To(BeNil())
		Expect(f.Busy()).To(BeTrue())
		Expect(grid.Rotations()).To(Equal(mid))

		clk.Advance(total)
		Eventually(done).Should(BeClosed())
		Expect(f.Cycles()).To(Equal(uint64(1)))
		Expect(grid.Cell(0).Rotation.X).To(Equal(flourish.FullTurn))
	})

	It("turns every cell a full revolution", func() {
		_, done := f.Trigger(context.Background(), grid)
		clk.Advance(total)
		Eventually(done).Should(BeClosed())

		for _, c := range grid.Snapshot() {
			Expect(c.Rotation.X).To(Equal(flourish.FullTurn))
			Expect(c.Rotation.Z).To(Equal(-flourish.FullTurn))
			Expect(c.Rotation.Y).To(BeZero())
		}
	})

	It("accumulates across cycles", func() {
		for i := 0; i < 2; i++ {
			_, done := f.Trigger(context.Background(), grid)
			clk.Advance(total)
			Eventually(done).Should(BeClosed())
		}
		Expect(grid.Cell(42).Rotation.X).To(BeNumerically("~", 2*flourish.FullTurn, 1e-9))
		Expect(grid.Cell(42).Rotation.Z).To(BeNumerically("~", -2*flourish.FullTurn, 1e-9))
		Expect(f.Cycles()).To(Equal(uint64(2)))
	})

	It("never moves a cell vertically", func() {
		grid.ApplyWave(0.9, 0.5)
		before := grid.Snapshot()

		_, done := f.Trigger(context.Background(), grid)
		clk.Advance(total / 2)
		clk.Advance(total)
		Eventually(done).Should(BeClosed())

		for i, c := range grid.Snapshot() {
			Expect(c.Position).To(Equal(before[i].Position))
		}
	})

	It("reports progress while running", func() {
		_, done := f.Trigger(context.Background(), grid)
		clk.Advance(total / 2)
		Expect(f.Progress()).To(BeNumerically("~", 0.5, 1e-9))
		clk.Advance(total)
		Eventually(done).Should(BeClosed())
		Expect(f.Progress()).To(BeZero())
	})

	It("skips an empty grid", func() {
		empty := scene.NewGrid(0, 2, colorful.Color{}, colorful.Color{})
		res, done := f.Trigger(context.Background(), empty)
		Expect(res).To(Equal(flourish.Skipped))
		Expect(done).To(BeNil())
		Expect(f.State()).To(Equal(flourish.Idle))

		res, _ = f.Trigger(context.Background(), nil)
		Expect(res).To(Equal(flourish.Skipped))
		Expect(f.Busy()).To(BeFalse())
	})

	It("finishes in the final pose when its context ends", func() {
		ctx, cancel := context.WithCancel(context.Background())
		_, done := f.Trigger(ctx, grid)
		cancel()

		Eventually(done).Should(BeClosed())
		Expect(f.Busy()).To(BeFalse())
		Expect(grid.Cell(99).Rotation.X).To(Equal(flourish.FullTurn))
	})

	It("releases its ticker after completion", func() {
		_, done := f.Trigger(context.Background(), grid)
		Expect(clk.Tickers()).To(Equal(1))
		clk.Advance(total)
		Eventually(done).Should(BeClosed())
		Eventually(clk.Tickers).Should(BeZero())
	})
})
