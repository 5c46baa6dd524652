package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/internal/automfile"
	"github.com/Summer2023SHY/udec/internal/obslog"
	"github.com/Summer2023SHY/udec/twinplant"
	"github.com/Summer2023SHY/udec/verifier"
)

type runFlags struct {
	dir               string
	first             string
	second            string
	third             string
	fourth            string
	controllers       int
	sweepPermutations bool
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load automata from --dir and verify them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "directory of plant_*.hdr/.bdy and spec_*.hdr/.bdy pairs")
	cmd.Flags().StringVar(&flags.first, "first", "plant", "PLANT_OVER_SPEC selection: plant|spec|alternating")
	cmd.Flags().StringVar(&flags.second, "second", "shortest", "counter-example length: shortest|longest")
	cmd.Flags().StringVar(&flags.third, "third", "start", "folded-spec reinsertion point: start|end")
	cmd.Flags().StringVar(&flags.fourth, "fourth", "first", "candidate scoring: first|min-transitions|min-states|shortest-rejection|longest-rejection")
	cmd.Flags().IntVar(&flags.controllers, "controllers", 1, "number of controllers for the observation mask (every event observable to every controller)")
	cmd.Flags().BoolVar(&flags.sweepPermutations, "sweep-permutations", false, "sweep all 60 Criteria combinations instead of just --first/--second/--third/--fourth")
	cmd.MarkFlagRequired("dir")

	return cmd
}

func runVerify(cmd *cobra.Command, flags *runFlags) error {
	log, err := obslog.New()
	if err != nil {
		return err
	}
	defer log.Sync()

	plants, specs, err := loadAutomataDir(flags.dir)
	if err != nil {
		return err
	}
	log.Infow("loaded automata", "plants", len(plants), "specs", len(specs))

	alphabet := specs[0].Alphabet()
	masks := twinplant.NewObservationMask(flags.controllers)
	for _, id := range alphabet.IDs() {
		for c := 0; c < flags.controllers; c++ {
			masks.Set(id, c, true)
		}
	}

	gSigmaStar, err := automaton.Universal(alphabet)
	if err != nil {
		return err
	}

	criteria, err := resolveCriteria(flags)
	if err != nil {
		return err
	}

	report, err := verifier.Sweep(plants, specs, gSigmaStar, masks, criteria)
	if err != nil {
		log.Errorw("verification failed", "error", err)
		return err
	}

	printReport(cmd, report)

	return nil
}

func resolveCriteria(flags *runFlags) ([]verifier.Criteria, error) {
	if flags.sweepPermutations {
		return verifier.AllCriteria(), nil
	}

	var c verifier.Criteria
	switch strings.ToLower(flags.first) {
	case "plant":
		c.First = verifier.PlantOverSpec
	case "spec":
		c.First = verifier.SpecOverPlant
	case "alternating":
		c.First = verifier.Alternating
	default:
		return nil, fmt.Errorf("unknown --first value %q", flags.first)
	}
	switch strings.ToLower(flags.second) {
	case "shortest":
		c.Second = verifier.ShortestCounterExample
	case "longest":
		c.Second = verifier.LongestCounterExample
	default:
		return nil, fmt.Errorf("unknown --second value %q", flags.second)
	}
	switch strings.ToLower(flags.third) {
	case "start":
		c.Third = verifier.InsertSpecsAtStart
	case "end":
		c.Third = verifier.InsertSpecsAtEnd
	default:
		return nil, fmt.Errorf("unknown --third value %q", flags.third)
	}
	switch strings.ToLower(flags.fourth) {
	case "first":
		c.Fourth = verifier.FirstMatch
	case "min-transitions":
		c.Fourth = verifier.MinTransitions
	case "min-states":
		c.Fourth = verifier.MinStates
	case "shortest-rejection":
		c.Fourth = verifier.ShortestRejection
	case "longest-rejection":
		c.Fourth = verifier.LongestRejection
	default:
		return nil, fmt.Errorf("unknown --fourth value %q", flags.fourth)
	}

	return []verifier.Criteria{c}, nil
}

// loadAutomataDir loads every plant_*.hdr/spec_*.hdr pair (with matching
// .bdy) in dir, classifying by filename prefix.
func loadAutomataDir(dir string) (plants, specs []*automaton.Automaton, err error) {
	headers, err := filepath.Glob(filepath.Join(dir, "*.hdr"))
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(headers)
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("no .hdr files found in %s", dir)
	}

	for _, headerPath := range headers {
		bodyPath := strings.TrimSuffix(headerPath, ".hdr") + ".bdy"
		a, err := automfile.Load(headerPath, bodyPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", headerPath, err)
		}

		base := strings.ToLower(filepath.Base(headerPath))
		switch {
		case strings.HasPrefix(base, "plant"):
			plants = append(plants, a)
		case strings.HasPrefix(base, "spec"):
			specs = append(specs, a)
		default:
			return nil, nil, fmt.Errorf("%s: filename must start with \"plant\" or \"spec\"", headerPath)
		}
	}

	if len(plants) == 0 || len(specs) == 0 {
		return nil, nil, fmt.Errorf("%s must contain at least one plant and one spec", dir)
	}

	return plants, specs, nil
}

type bucket struct {
	criteria verifier.Criteria
	verdicts []bool
	inner    []int
	peakU    []int
	peakA    []int
}

func printReport(cmd *cobra.Command, report verifier.SweepReport) {
	buckets := make(map[verifier.Criteria]*bucket)
	for _, run := range report.Runs {
		b, ok := buckets[run.Criteria]
		if !ok {
			b = &bucket{criteria: run.Criteria}
			buckets[run.Criteria] = b
		}
		b.verdicts = append(b.verdicts, run.Verdict)
		b.inner = append(b.inner, run.Aggregate.InnerIterations)
		b.peakU = append(b.peakU, run.Aggregate.PeakUStructureStates)
		b.peakA = append(b.peakA, run.Aggregate.PeakAutomatonStates)
	}

	// buckets is keyed by a struct of four enums: iteration order is
	// unspecified, so sort by String() for a stable report regardless of
	// how many Criteria a --sweep-permutations run produced.
	order := maps.Keys(buckets)
	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CRITERIA\tVERDICT\tINNER(min/avg/max)\tU-STATES(min/avg/max)\tAUTOMATON(min/avg/max)")
	for _, c := range order {
		b := buckets[c]
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\t%s\n",
			c, allSame(b.verdicts), minAvgMax(b.inner), minAvgMax(b.peakU), minAvgMax(b.peakA))
	}
	w.Flush()
}

func allSame(verdicts []bool) bool {
	for _, v := range verdicts {
		if v != verdicts[0] {
			return false
		}
	}

	return verdicts[0]
}

func minAvgMax(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	min, max, sum := xs[0], xs[0], 0
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		sum += x
	}

	return fmt.Sprintf("%d/%.1f/%d", min, float64(sum)/float64(len(xs)), max)
}
