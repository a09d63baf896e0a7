package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sutyum/ecoli-code/fba"
)

var (
	styTarget float64 // space-time-yield goal for the improvement report
	pathways  bool    // log pathway usage for the best performer
	tradeoff  bool    // sweep growth constraints for the best performer
	maxGrowth float64 // upper end of the growth-constraint sweep (1/h)
)

// optimizeCmd evaluates production for every catalog target and exports
// the ranked results.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize production rates for all catalog targets",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		r, err := setupRun()
		if err != nil {
			logrus.Fatalf("setup failed: %v", err)
		}

		results := r.optimizer.OptimizeAll(r.catalog.IDs())
		for _, res := range results {
			if res.Optimal() {
				logrus.Infof("  %-20s %8.4f mmol/gDW/h (%s)", res.TargetID, res.Rate, res.Status)
			} else {
				logrus.Infof("  %-20s %8s", res.TargetID, res.Status)
			}
		}

		rs := fba.Aggregate(r.catalog, results)
		summary := rs.Summarize()
		if summary.BestTarget != "" {
			logrus.Infof("best performer: %s at %.4f mmol/gDW/h (%.4f g/L/h)",
				summary.BestTarget, summary.BestRate, summary.BestMassRate)
			if factor := summary.ImprovementFactor(styTarget); factor > 1 {
				logrus.Infof("improvement needed for %.0f g/L/h space-time yield: %.0fx", styTarget, factor)
			}
			if pathways {
				logPathwayUsage(r, summary.BestTarget)
			}
			if tradeoff {
				logGrowthTradeoff(r, summary.BestTarget)
			}
		} else {
			logrus.Warn("no target reached an optimal solution")
		}

		if err := writeResultsCSV(outPath, rs); err != nil {
			logrus.Fatalf("exporting results: %v", err)
		}
		logrus.Infof("results written to %s", outPath)
		if summaryPath != "" {
			if err := writeSummaryYAML(summaryPath, rs); err != nil {
				logrus.Fatalf("exporting summary: %v", err)
			}
			logrus.Infof("summary written to %s", summaryPath)
		}
	},
}

func logPathwayUsage(r *run, targetID string) {
	res, err := r.optimizer.Optimize(targetID)
	if err != nil || !res.Optimal() {
		return
	}
	sol, err := r.adapter.Solve()
	if err != nil {
		return
	}
	usage := fba.AnalyzePathways(r.adapter, targetID, sol)
	logrus.Infof("pathway usage for %s: %d active reactions, %d touching the target pool, key pathways %v",
		targetID, len(usage.ActiveReactions), len(usage.TargetReactions), usage.KeyPathways)
}

// logGrowthTradeoff sweeps growth constraints for one target and logs the
// resulting frontier.
func logGrowthTradeoff(r *run, targetID string) {
	points, err := r.optimizer.GrowthTradeoff(targetID, fba.GrowthGrid(maxGrowth, 9))
	if err != nil {
		logrus.Warnf("growth tradeoff for %s: %v", targetID, err)
		return
	}
	logrus.Infof("growth vs production for %s:", targetID)
	for _, p := range points {
		if p.Optimal() {
			logrus.Infof("  growth >= %.2f 1/h  %8.4f mmol/gDW/h", p.GrowthConstraint, p.Rate)
		} else {
			logrus.Infof("  growth >= %.2f 1/h  %8s", p.GrowthConstraint, p.Status)
		}
	}
}

func init() {
	optimizeCmd.Flags().Float64Var(&styTarget, "sty-target", 30.0, "Space-time-yield goal in g/L/h for the improvement report")
	optimizeCmd.Flags().BoolVar(&pathways, "pathways", false, "Log pathway usage analysis for the best performer")
	optimizeCmd.Flags().BoolVar(&tradeoff, "tradeoff", false, "Sweep growth constraints for the best performer (needs --biomass-reaction)")
	optimizeCmd.Flags().Float64Var(&maxGrowth, "max-growth", 0.8, "Upper growth constraint for the --tradeoff sweep in 1/h")
}
