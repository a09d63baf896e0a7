package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sutyum/ecoli-code/fba"
)

var (
	screenTarget  string   // target metabolite to screen knockouts for
	reactionKOs   []string // reaction knockout candidates
	geneKOs       []string // gene knockout candidates
	screenWorkers int      // parallel workers (1 = sequential)
)

// screenCmd evaluates knockout candidates for one target and exports the
// per-candidate deltas against the unperturbed baseline.
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen gene/reaction knockouts for one target",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if screenTarget == "" {
			logrus.Fatalf("--target is required")
		}
		candidates := make([]fba.KnockoutCandidate, 0, len(reactionKOs)+len(geneKOs))
		for _, id := range reactionKOs {
			candidates = append(candidates, fba.ReactionKnockout(id))
		}
		for _, id := range geneKOs {
			candidates = append(candidates, fba.GeneKnockout(id))
		}
		if len(candidates) == 0 {
			logrus.Fatalf("no knockout candidates given (--knockouts / --gene-knockouts)")
		}

		r, err := setupRun()
		if err != nil {
			logrus.Fatalf("setup failed: %v", err)
		}

		screener := fba.NewScreener(r.optimizer)
		baseline, results, err := screener.ScreenParallel(screenTarget, candidates, screenWorkers)
		if err != nil {
			logrus.Fatalf("screening %s: %v", screenTarget, err)
		}

		for _, kr := range results {
			switch {
			case kr.Err != nil:
				logrus.Warnf("  %-24s failed: %v", kr.Candidate, kr.Err)
			case kr.DeltaDefined:
				logrus.Infof("  %-24s %8.4f mmol/gDW/h (%+.1f%%)", kr.Candidate, kr.Rate, kr.Improvement)
			default:
				logrus.Infof("  %-24s %8s", kr.Candidate, kr.Status)
			}
		}

		rs := fba.AggregateScreen(r.catalog, baseline, results)
		if err := writeResultsCSV(outPath, rs); err != nil {
			logrus.Fatalf("exporting results: %v", err)
		}
		logrus.Infof("screen results written to %s", outPath)
		if summaryPath != "" {
			if err := writeSummaryYAML(summaryPath, rs); err != nil {
				logrus.Fatalf("exporting summary: %v", err)
			}
		}
	},
}

func init() {
	screenCmd.Flags().StringVar(&screenTarget, "target", "", "Target metabolite identifier (e.g. octanoic_acid)")
	screenCmd.Flags().StringSliceVar(&reactionKOs, "knockouts", nil, "Comma-separated reaction knockout candidates")
	screenCmd.Flags().StringSliceVar(&geneKOs, "gene-knockouts", nil, "Comma-separated gene knockout candidates")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 1, "Parallel screening workers (each gets its own model copy)")
}
