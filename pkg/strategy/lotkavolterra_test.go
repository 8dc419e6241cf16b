package strategy

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

var _ = Describe("LotkaVolterraStrategy", func() {
	var cfg config.AllocatorConfig

	BeforeEach(func() {
		cfg = config.Default()
		cfg.Strategy = config.StrategyLotkaVolterra
	})

	workloads := []core.Workload{
		{ID: "a", Complexity: 0.9, Priority: 1},
		{ID: "b", Complexity: 0.5, Priority: 0.8},
		{ID: "c", Complexity: 0.2, Priority: 0.3},
		{ID: "d", Complexity: 0.7, Priority: 0.1},
	}

	It("terminates with finite non-negative scores", func() {
		for _, gamma := range []float64{0.1, 1.0, 2.0, 3.5, 5.0} {
			s := NewLotkaVolterraStrategy(cfg.WithGamma(gamma))
			scores := s.Scores(context.Background(), workloads)
			Expect(scores).To(HaveLen(len(workloads)))
			for _, v := range scores {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(math.IsNaN(v)).To(BeFalse())
				Expect(math.IsInf(v, 0)).To(BeFalse())
			}
		}
	})

	It("is deterministic", func() {
		s := NewLotkaVolterraStrategy(cfg)
		first := s.Scores(context.Background(), workloads)
		second := s.Scores(context.Background(), workloads)
		Expect(second).To(Equal(first))
	})

	It("favors higher intrinsic growth at equal priority", func() {
		s := NewLotkaVolterraStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "hard", Complexity: 0.9, Priority: 0.6},
			{ID: "easy", Complexity: 0.2, Priority: 0.6},
		})
		Expect(scores[0]).To(BeNumerically(">", scores[1]))
	})

	It("keeps zero-priority populations at zero", func() {
		s := NewLotkaVolterraStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "idle", Complexity: 0.9, Priority: 0},
			{ID: "busy", Complexity: 0.9, Priority: 1},
		})
		Expect(scores[0]).To(BeZero())
		Expect(scores[1]).To(BeNumerically(">", 0))
	})

	It("returns all zeros when every priority is zero", func() {
		s := NewLotkaVolterraStrategy(cfg)
		scores := s.Scores(context.Background(), []core.Workload{
			{ID: "a", Complexity: 0.9, Priority: 0},
			{ID: "b", Complexity: 0.4, Priority: 0},
		})
		Expect(scores).To(Equal([]float64{0, 0}))
	})

	It("honors a caller-provided competition coefficient", func() {
		strong := cfg
		strong.CompetitionCoefficient = 2.0
		weak := cfg
		weak.CompetitionCoefficient = 0.01

		sStrong := NewLotkaVolterraStrategy(strong)
		sWeak := NewLotkaVolterraStrategy(weak)
		strongScores := sStrong.Scores(context.Background(), workloads)
		weakScores := sWeak.Scores(context.Background(), workloads)

		// Weaker competition lets populations grow further before the
		// shared capacity bites.
		Expect(weakScores[0]).To(BeNumerically(">", strongScores[0]))
	})

	It("returns nil for an empty workload list", func() {
		s := NewLotkaVolterraStrategy(cfg)
		Expect(s.Scores(context.Background(), nil)).To(BeNil())
	})
})
