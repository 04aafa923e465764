package selection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/selection"
)

var _ = Describe("State", func() {
	var s *selection.State

	BeforeEach(func() {
		s = selection.New()
	})

	It("starts with projectile and velocity enabled", func() {
		Expect(s.Enabled(ballistics.Projectile)).To(BeTrue())
		Expect(s.Enabled(ballistics.Velocity)).To(BeTrue())
		Expect(s.Enabled(ballistics.RifleWeight)).To(BeFalse())
		Expect(s.Order()).To(Equal([]ballistics.Variable{ballistics.Projectile, ballistics.Velocity}))

		free, ok := s.Free()
		Expect(ok).To(BeTrue())
		Expect(free).To(Equal(ballistics.RifleWeight))
	})

	Context("enabling a third variable", func() {
		It("evicts the oldest selection", func() {
			evicted, ok := s.Toggle(ballistics.RifleWeight)
			Expect(ok).To(BeTrue())
			Expect(evicted).To(Equal(ballistics.Projectile))

			Expect(s.Enabled(ballistics.Projectile)).To(BeFalse())
			Expect(s.Enabled(ballistics.Velocity)).To(BeTrue())
			Expect(s.Enabled(ballistics.RifleWeight)).To(BeTrue())
			Expect(s.Order()).To(Equal([]ballistics.Variable{ballistics.Velocity, ballistics.RifleWeight}))
		})

		It("keeps evicting in FIFO order", func() {
			s.Toggle(ballistics.RifleWeight)
			evicted, ok := s.Toggle(ballistics.Projectile)
			Expect(ok).To(BeTrue())
			Expect(evicted).To(Equal(ballistics.Velocity))

			free, _ := s.Free()
			Expect(free).To(Equal(ballistics.Velocity))
		})
	})

	Context("disabling a variable", func() {
		It("leaves a single variable and no pair", func() {
			_, evicted := s.Toggle(ballistics.Velocity)
			Expect(evicted).To(BeFalse())
			Expect(s.Count()).To(Equal(1))
			Expect(s.Order()).To(Equal([]ballistics.Variable{ballistics.Projectile}))

			_, ok := s.Pair()
			Expect(ok).To(BeFalse())
			_, ok = s.Free()
			Expect(ok).To(BeFalse())
		})

		It("recovers when another variable is enabled", func() {
			s.Toggle(ballistics.Velocity)
			_, evicted := s.Toggle(ballistics.RifleWeight)
			Expect(evicted).To(BeFalse())

			free, ok := s.Free()
			Expect(ok).To(BeTrue())
			Expect(free).To(Equal(ballistics.Velocity))
		})
	})

	It("treats SetEnabled as idempotent", func() {
		_, evicted := s.SetEnabled(ballistics.Projectile, true)
		Expect(evicted).To(BeFalse())
		Expect(s.Count()).To(Equal(2))
	})

	It("builds from an explicit list", func() {
		st := selection.FromEnabled(ballistics.Velocity, ballistics.RifleWeight)
		free, ok := st.Free()
		Expect(ok).To(BeTrue())
		Expect(free).To(Equal(ballistics.Projectile))
	})
})
