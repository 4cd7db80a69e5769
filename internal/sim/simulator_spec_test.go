package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

var _ = Describe("Simulator", func() {
	var s *sim.Simulator

	BeforeEach(func() {
		s = sim.New(sim.InitialPosition, dynamo.DefaultConfig())
	})

	Context("on the classic scenario", func() {
		It("starts at rest in time", func() {
			Expect(s.Elapsed()).To(BeZero())
			Expect(s.Current()).To(Equal(s.Previous()))
		})

		It("produces the pinned first frame", func() {
			f := s.Step()

			Expect(f.Previous).To(Equal(dynamo.V(10, 1, 10)))
			Expect(f.Current.X).To(BeNumerically("~", 9.227606862129809, 1e-12))
			Expect(f.Current.Y).To(BeNumerically("~", 2.713386280952542, 1e-12))
			Expect(f.Current.Z).To(BeNumerically("~", 9.913019809914664, 1e-12))
			Expect(f.Elapsed).To(Equal(0.01))
			Expect(f.Color.R).To(BeNumerically("~", 0.2307, 1e-4))
			Expect(f.Color.G).To(BeNumerically("~", 0.0678, 1e-4))
			Expect(f.Color.B).To(BeNumerically("~", 0.2478, 1e-4))
		})

		It("stays on the attractor for a long run", func() {
			for i := 0; i < 10000; i++ {
				s.Step()
			}
			Expect(s.Current().IsFinite()).To(BeTrue())
			Expect(s.Current().Norm()).To(BeNumerically("<", 100))
		})
	})

	Context("with two identical runs", func() {
		It("emits bit-identical frames", func() {
			other := sim.New(sim.InitialPosition, dynamo.DefaultConfig())
			for i := 0; i < 2000; i++ {
				Expect(s.Step()).To(Equal(other.Step()))
			}
		})
	})

	DescribeTable("elapsed time after n steps",
		func(dt float64, n int) {
			r := sim.New(sim.InitialPosition, dynamo.Config{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: dt})
			for i := 0; i < n; i++ {
				r.Step()
			}
			Expect(r.Elapsed()).To(BeNumerically("~", float64(n)*dt, 1e-9))
		},
		Entry("classic step", 0.01, 100),
		Entry("fine step", 0.001, 1000),
		Entry("coarse step", 0.02, 50),
	)
})
