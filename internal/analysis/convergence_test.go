package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/analysis"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/sim"
)

var _ = Describe("Convergence", func() {
	var (
		p0 dynamo.Position
		v0 dynamo.Velocity
	)

	BeforeEach(func() {
		p0 = dynamo.Position{X: 0.0, Y: 10.0}
		v0 = dynamo.Velocity{X: 0.5, Y: 4.0}
	})

	Context("when dt is halved over a fixed duration", func() {
		var study *analysis.Study

		BeforeEach(func() {
			var err error
			study, err = analysis.Convergence(p0, v0, 1.0, 0.1, 6)
			Expect(err).NotTo(HaveOccurred())
		})

		It("runs one level per halving", func() {
			Expect(study.Levels).To(HaveLen(6))
			Expect(study.Levels[0].Steps).To(Equal(11))
			Expect(study.Levels[5].Steps).To(Equal(321))
		})

		It("ends every level at the same time", func() {
			for _, l := range study.Levels {
				Expect(l.Elapsed).To(BeNumerically("~", 1.0, 1e-9))
			}
		})

		It("decreases the final error monotonically", func() {
			Expect(study.Monotone()).To(BeTrue())
		})

		It("shows first-order convergence", func() {
			Expect(math.IsNaN(study.Levels[0].Order)).To(BeTrue())
			for _, l := range study.Levels[1:] {
				Expect(l.Order).To(BeNumerically("~", 1.0, 1e-6))
			}
			Expect(study.ObservedOrder()).To(BeNumerically("~", 1.0, 1e-6))
		})

		It("matches the predicted Euler bias", func() {
			for _, l := range study.Levels {
				Expect(l.Error).To(BeNumerically("~", analysis.EulerBias(l.Dt, l.Elapsed), 1e-9))
			}
		})
	})

	Context("at the notebook parameters", func() {
		It("stays within 0.01 m at dt = 0.001", func() {
			n, err := sim.StepsFor(0.99, 0.001)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(991))

			traj, err := sim.Trajectory(p0, v0, 0.001, n)
			Expect(err).NotTo(HaveOccurred())

			c := analysis.Compare(traj, p0, v0, 0.001)
			Expect(c.FinalError).To(BeNumerically("<", 0.01))
		})

		It("shrinks the error at t = 0.99 as dt shrinks", func() {
			study, err := analysis.Convergence(p0, v0, 0.99, 0.01, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(study.Levels[0].Steps).To(Equal(100))
			Expect(study.Monotone()).To(BeTrue())
		})
	})

	Context("with a single level", func() {
		It("has no measurable order", func() {
			study, err := analysis.Convergence(p0, v0, 0.5, 0.05, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(study.Levels).To(HaveLen(1))
			Expect(math.IsNaN(study.ObservedOrder())).To(BeTrue())
		})
	})

	Context("launched from rest", func() {
		It("still accumulates the gravity bias", func() {
			study, err := analysis.Convergence(dynamo.Position{}, dynamo.Velocity{}, 1.0, 0.1, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(study.Levels[0].Error).To(BeNumerically("~", 0.49, 1e-9))
			Expect(study.Monotone()).To(BeTrue())
		})
	})
})
