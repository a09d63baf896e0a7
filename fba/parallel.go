package fba

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ScreenParallel is Screen with candidates fanned out over a bounded worker
// pool. Every worker operates on its own deep copy of the model, because
// the shared model is not safe for concurrent mutation; the output ordering
// is identical to Screen regardless of execution interleaving. Falls back
// to sequential screening when workers <= 1 or the model backend cannot
// clone.
func (s *Screener) ScreenParallel(targetID string, candidates []KnockoutCandidate, workers int) (ProductionResult, []KnockoutResult, error) {
	if workers <= 1 {
		return s.Screen(targetID, candidates)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	// Per-worker optimizer replicas over independent model clones.
	replicas := make(chan *Optimizer, workers)
	for i := 0; i < workers; i++ {
		a, ok := s.opt.adapter.clone()
		if !ok {
			logrus.Warnf("model backend cannot clone; screening %s sequentially", targetID)
			return s.Screen(targetID, candidates)
		}
		replicas <- NewOptimizer(a, s.opt.catalog, s.opt.cfg)
	}

	baseline, err := s.opt.Optimize(targetID)
	if err != nil {
		return ProductionResult{}, nil, err
	}
	logrus.Infof("screening %d knockouts for %s across %d workers (baseline %.4f mmol/gDW/h)",
		len(candidates), targetID, workers, baseline.Rate)

	results := make([]KnockoutResult, len(candidates))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			opt := <-replicas
			defer func() { replicas <- opt }()
			worker := &Screener{opt: opt}
			results[i] = worker.evaluate(targetID, c, baseline)
			return nil
		})
	}
	// Per-candidate failures are recorded inline, so Wait never errors.
	_ = g.Wait()
	return baseline, results, nil
}
