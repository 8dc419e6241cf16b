package strategy

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

var _ = Describe("MonodStrategy", func() {
	var cfg config.AllocatorConfig

	BeforeEach(func() {
		cfg = config.Default()
	})

	It("matches the hyperbolic curve at gamma 1", func() {
		s := NewMonodStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "a", Complexity: 0.9, Priority: 1},
			{ID: "b", Complexity: 0.5, Priority: 1},
			{ID: "c", Complexity: 0.2, Priority: 1},
		})
		// c / (0.5 + c) with K = 0.5
		Expect(scores[0]).To(BeNumerically("~", 0.9/1.4, 1e-12))
		Expect(scores[1]).To(BeNumerically("~", 0.5/1.0, 1e-12))
		Expect(scores[2]).To(BeNumerically("~", 0.2/0.7, 1e-12))
	})

	It("scales scores linearly with priority", func() {
		s := NewMonodStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "a", Complexity: 0.8, Priority: 1},
			{ID: "b", Complexity: 0.8, Priority: 0.5},
		})
		Expect(scores[1]).To(BeNumerically("~", scores[0]/2, 1e-12))
	})

	It("scores zero complexity as zero", func() {
		s := NewMonodStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "a", Complexity: 0, Priority: 1},
		})
		Expect(scores[0]).To(BeZero())
	})

	It("applies the energy multiplier after the curve", func() {
		s := NewMonodStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "a", Complexity: 0.6, Priority: 1},
			{ID: "b", Complexity: 0.6, Priority: 1, Energy: core.EnergyHyperfocus},
			{ID: "c", Complexity: 0.6, Priority: 1, Energy: core.EnergyNormal},
			{ID: "d", Complexity: 0.6, Priority: 1, Energy: core.EnergyBrainfog},
		})
		Expect(scores[1]).To(BeNumerically("~", scores[0], 1e-12))
		Expect(scores[2]).To(BeNumerically("~", scores[0]*0.66, 1e-12))
		Expect(scores[3]).To(BeNumerically("~", scores[0]*0.33, 1e-12))
	})

	It("sharpens the response as gamma grows", func() {
		ratioAt := func(gamma float64) float64 {
			s := NewMonodStrategy(cfg.WithGamma(gamma))
			scores := s.Scores(context.Background(), []core.Workload{
				{ID: "hard", Complexity: 0.9, Priority: 1},
				{ID: "easy", Complexity: 0.1, Priority: 1},
			})
			return scores[0] / scores[1]
		}
		Expect(ratioAt(2.0)).To(BeNumerically(">", ratioAt(1.0)))
		Expect(ratioAt(3.5)).To(BeNumerically(">", ratioAt(2.0)))
	})

	It("flattens toward uniform for small gamma", func() {
		s := NewMonodStrategy(cfg.WithGamma(0.05))
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "hard", Complexity: 0.9, Priority: 1},
			{ID: "easy", Complexity: 0.1, Priority: 1},
		})
		Expect(scores[0] / scores[1]).To(BeNumerically("<", 1.2))
	})
})

var _ = Describe("New factory", func() {
	It("creates the strategy selected by the config", func() {
		monod, err := New(config.Default())
		Expect(err).NotTo(HaveOccurred())
		Expect(monod.Name()).To(Equal("monod"))

		cfg := config.Default()
		cfg.Strategy = config.StrategyLotkaVolterra
		lv, err := New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(lv.Name()).To(Equal("lotka-volterra"))
	})

	It("rejects unknown strategies", func() {
		cfg := config.Default()
		cfg.Strategy = "roulette"
		_, err := New(cfg)
		Expect(err).To(HaveOccurred())
	})
})
