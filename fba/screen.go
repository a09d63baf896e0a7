package fba

import (
	"github.com/sirupsen/logrus"
)

// Screener evaluates candidate knockouts for one target metabolite against
// an unperturbed baseline. It holds no mutable model state of its own; all
// isolation comes from the Adapter's scoped apply/restore discipline, so
// knockouts can never compound.
type Screener struct {
	opt *Optimizer
}

// NewScreener builds a screener over the given optimizer.
func NewScreener(opt *Optimizer) *Screener {
	return &Screener{opt: opt}
}

// Screen computes the baseline ProductionResult for the target, then
// evaluates every candidate in input order against that clean baseline.
// Results are returned in candidate order, unsorted: ranking by delta is a
// caller concern. An infeasible knockout is a normal reportable outcome; a
// candidate whose identifier cannot be resolved is recorded as a failure
// marker and screening continues. The returned error covers only the
// baseline (an unregistered target aborts the whole screen).
func (s *Screener) Screen(targetID string, candidates []KnockoutCandidate) (ProductionResult, []KnockoutResult, error) {
	baseline, err := s.opt.Optimize(targetID)
	if err != nil {
		return ProductionResult{}, nil, err
	}
	logrus.Infof("screening %d knockouts for %s (baseline %.4f mmol/gDW/h, %s)",
		len(candidates), targetID, baseline.Rate, baseline.Status)

	results := make([]KnockoutResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, s.evaluate(targetID, c, baseline))
	}
	return baseline, results, nil
}

func (s *Screener) evaluate(targetID string, c KnockoutCandidate, baseline ProductionResult) KnockoutResult {
	var run ProductionResult
	err := s.opt.Adapter().WithKnockout(c, func() error {
		var optErr error
		run, optErr = s.opt.Optimize(targetID)
		return optErr
	})
	if err != nil {
		logrus.Warnf("knockout %s failed: %v", c, err)
		return KnockoutResult{
			Candidate:        c,
			ProductionResult: ProductionResult{TargetID: targetID, Status: StatusFailed, Err: err},
		}
	}
	return compareToBaseline(c, run, baseline)
}

// compareToBaseline attaches the baseline delta to a knockout run. The
// delta is defined only when both runs reached optimal status.
func compareToBaseline(c KnockoutCandidate, run, baseline ProductionResult) KnockoutResult {
	kr := KnockoutResult{Candidate: c, ProductionResult: run}
	if run.Optimal() && baseline.Optimal() {
		kr.Delta = run.Rate - baseline.Rate
		kr.DeltaDefined = true
		if baseline.Rate > 0 {
			kr.Improvement = kr.Delta / baseline.Rate * 100
		}
	}
	return kr
}
