package sim

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/viz"
)

func testOptions(mode string, capacity int) Options {
	cfg := config.DefaultConfig()
	cfg.Mode = mode
	cfg.MaxLength = capacity
	return FromConfig(cfg)
}

func mustNew(opts Options) *Simulator {
	s, err := New(opts)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Simulator", func() {
	Describe("construction", func() {
		DescribeTable("rejects bad options",
			func(mutate func(*Options), want error) {
				opts := testOptions(config.ModeAnimate, 16)
				mutate(&opts)
				_, err := New(opts)
				Expect(err).To(MatchError(want))
			},
			Entry("zero capacity", func(o *Options) { o.Capacity = 0 }, dynamo.ErrInvalidCapacity),
			Entry("unknown integrator", func(o *Options) { o.Integrator = "leapfrog" }, dynamo.ErrUnknownIntegrator),
			Entry("unknown mode", func(o *Options) { o.Mode = "replay" }, dynamo.ErrUnknownMode),
			Entry("NaN sigma", func(o *Options) { o.Sigma = math.NaN() }, dynamo.ErrParameterBounds),
			Entry("zero dt", func(o *Options) { o.Dt = 0 }, dynamo.ErrParameterBounds),
			Entry("infinite seed", func(o *Options) { o.Seed.Y = math.Inf(-1) }, dynamo.ErrParameterBounds),
		)

		It("starts an animation from the seed alone", func() {
			s := mustNew(testOptions(config.ModeAnimate, 16))
			st := s.Stats()
			Expect(st.Valid).To(Equal(1))
			Expect(st.Head).To(Equal(0))
			Expect(st.Latest).To(Equal(dynamo.State3{X: 0.1}))
			Expect(st.MaxSegment).To(Equal(5.5))
		})

		It("fills the buffer up front in explore mode", func() {
			s := mustNew(testOptions(config.ModeExplore, 64))
			st := s.Stats()
			Expect(st.Valid).To(Equal(64))
			Expect(st.Head).To(Equal(63))
		})
	})

	Describe("animate frames", func() {
		var s *Simulator

		BeforeEach(func() {
			s = mustNew(testOptions(config.ModeAnimate, 16))
		})

		It("pushes one Euler step per frame", func() {
			segs := s.Frame()
			want := physics.Step(dynamo.State3{X: 0.1}, 10, 28, 8.0/3.0, 0.01)
			Expect(s.Stats().Latest).To(Equal(want))
			Expect(s.Stats().Head).To(Equal(1))
			Expect(segs).To(HaveLen(1))
			Expect(segs[0].Index).To(Equal(0))
			Expect(segs[0].Age).To(BeNumerically("~", 15.0/16.0))
		})

		It("projects before advancing the view angles", func() {
			segs := s.Frame()
			Expect(segs[0].A).To(Equal(dynamo.Point2{X: 0.1, Y: 0}))
			Expect(s.Angles().Pitch).To(BeNumerically("~", 0.01))
			Expect(s.Angles().Yaw).To(BeZero())
		})

		It("draws n-1 segments once the ring is full", func() {
			var segs []viz.Segment
			for i := 0; i < 40; i++ {
				segs = s.Frame()
			}
			Expect(s.Buffer().Full()).To(BeTrue())
			Expect(segs).To(HaveLen(15))
			for _, seg := range segs {
				Expect(seg.Index).NotTo(Equal(s.Stats().Head))
			}
		})

		It("never lowers the running maximum", func() {
			last := s.Stats().MaxSegment
			for i := 0; i < 200; i++ {
				s.Frame()
				m := s.Stats().MaxSegment
				Expect(m).To(BeNumerically(">=", last))
				last = m
			}
		})

		It("stands still while paused", func() {
			s.Frame()
			Expect(s.Apply(TogglePause{})).To(BeTrue())
			before := s.Stats()
			s.Frame()
			after := s.Stats()
			Expect(after.Latest).To(Equal(before.Latest))
			Expect(after.Angles).To(Equal(before.Angles))
			Expect(after.Frames).To(Equal(before.Frames + 1))
		})

		It("is deterministic", func() {
			other := mustNew(testOptions(config.ModeAnimate, 16))
			for i := 0; i < 50; i++ {
				Expect(s.Frame()).To(Equal(other.Frame()))
			}
		})
	})

	Describe("explore frames", func() {
		It("neither steps nor rotates on its own", func() {
			s := mustNew(testOptions(config.ModeExplore, 32))
			before := s.Stats()
			segs := s.Frame()
			Expect(segs).To(HaveLen(31))
			Expect(s.Stats().Latest).To(Equal(before.Latest))
			Expect(s.Angles()).To(Equal(before.Angles))
		})

		It("draws the whole recomputed trajectory at full value", func() {
			s := mustNew(FromConfig(config.GetPreset("tuning")))
			segs := s.Frame()
			Expect(segs).To(HaveLen(s.Buffer().Cap() - 1))
			for _, seg := range segs {
				Expect(seg.Shade.Value).To(Equal(100.0))
			}
			_, sat, _ := segs[0].Shade.Color.Hsv()
			Expect(sat).To(BeNumerically("~", 0.5, 1e-9))
		})

		It("keeps the age fade in animate mode", func() {
			s := mustNew(testOptions(config.ModeAnimate, 16))
			var segs []viz.Segment
			for i := 0; i < 20; i++ {
				segs = s.Frame()
			}
			for _, seg := range segs {
				Expect(seg.Shade.Value).To(BeNumerically("<", 100))
			}
		})
	})

	Describe("events", func() {
		var s *Simulator

		BeforeEach(func() {
			s = mustNew(testOptions(config.ModeAnimate, 16))
		})

		It("stops on quit", func() {
			Expect(s.Apply(Quit{})).To(BeFalse())
		})

		It("turns by the view speed and wraps", func() {
			s.Apply(Turn{Axis: Yaw, Dir: 1})
			Expect(s.Angles().Yaw).To(BeNumerically("~", 0.1))
			s.Apply(Turn{Axis: Roll, Dir: -1})
			Expect(s.Angles().Roll).To(BeNumerically("~", 2*math.Pi-0.1, 1e-12))
		})

		It("restarts from the seed when parameters change", func() {
			for i := 0; i < 5; i++ {
				s.Frame()
			}
			s.Apply(SetParams{Sigma: 12, Rho: 99.96, Beta: 2})
			sigma, rho, beta := s.Params()
			Expect([]float64{sigma, rho, beta}).To(Equal([]float64{12, 99.96, 2}))
			Expect(s.Stats().Valid).To(Equal(1))
			Expect(s.Stats().Latest).To(Equal(dynamo.State3{X: 0.1}))
		})

		It("ignores non-finite parameters", func() {
			s.Frame()
			s.Apply(SetParams{Sigma: math.NaN(), Rho: 5, Beta: 1})
			sigma, rho, beta := s.Params()
			Expect([]float64{sigma, rho, beta}).To(Equal([]float64{10, 28, 8.0 / 3.0}))
			Expect(s.Stats().Valid).To(Equal(2))
		})

		It("recomputes the whole trajectory in explore mode", func() {
			e := mustNew(testOptions(config.ModeExplore, 32))
			e.Apply(SetParams{Sigma: 10, Rho: 14, Beta: 8.0 / 3.0})
			Expect(e.Stats().Valid).To(Equal(32))
			Expect(e.Stats().Rho).To(Equal(14.0))
		})

		DescribeTable("nudges within the slider range",
			func(param string, steps int, want float64) {
				s.Apply(Nudge{Param: param, Steps: steps})
				Expect(s.field.GetParams()[param]).To(BeNumerically("~", want, 1e-12))
			},
			Entry("rho up", "rho", 2, 29.0),
			Entry("sigma down", "sigma", -3, 8.5),
			Entry("rho clamped high", "rho", 1000, 60.0),
			Entry("beta clamped low", "beta", -1000, 0.1),
		)

		It("ignores nudges of unknown parameters", func() {
			Expect(s.Apply(Nudge{Param: "dt", Steps: 1})).To(BeTrue())
			sigma, rho, beta := s.Params()
			Expect([]float64{sigma, rho, beta}).To(Equal([]float64{10, 28, 8.0 / 3.0}))
		})

		It("resets the view and the trajectory but keeps the running maximum", func() {
			for i := 0; i < 300; i++ {
				s.Frame()
			}
			s.Apply(Turn{Axis: Pitch, Dir: 1})
			max := s.Stats().MaxSegment
			s.Apply(Reset{})
			st := s.Stats()
			Expect(st.Angles).To(Equal(viz.ViewAngles{}))
			Expect(st.Valid).To(Equal(1))
			Expect(st.MaxSegment).To(Equal(max))
		})
	})
})
