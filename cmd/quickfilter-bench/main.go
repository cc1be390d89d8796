// quickfilter-bench compares the quickfilter sliding-window order-statistic
// filter against brute-force and rolling-median references on a random
// Gaussian signal, reporting per-iteration timings and the summed absolute
// difference between results.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/JaderDias/movingmedian"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/quickfilter/internal/log"
	"github.com/chrissnell/quickfilter/internal/reference"
	"github.com/chrissnell/quickfilter/pkg/quickfilter"
)

type iterationResult struct {
	QuickNs        float64
	NaiveNs        float64
	RollingNs      float64 // zero when the rolling-median comparator did not run
	AbsDiffVsNaive float64
}

func main() {
	var (
		signalLen    = flag.Int("n", 1<<12, "Signal length")
		windowSize   = flag.Int("window", 1<<8, "Sliding window size")
		percent      = flag.Float64("percent", 0.5, "Selection percentile in [0, 1]")
		index        = flag.Int("index", -1, "Selection rank; overrides -percent when >= 0")
		edgeMode     = flag.String("edge-mode", "constant", "Edge mode: constant, nearest, reflect, mirror, wrap")
		truncateMode = flag.String("truncate-mode", "same", "Truncation mode: valid, same, full")
		cval         = flag.Float64("cval", 0.0, "Padding value for the constant edge mode")
		iterations   = flag.Int("iterations", 10, "Benchmark iterations")
		seed         = flag.Int64("seed", 1, "Random seed for signal generation")
		csvOutput    = flag.String("csv", "", "Optional CSV output file for per-iteration timings")
		debug        = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	params := quickfilter.Params{
		WindowSize:    *windowSize,
		Index:         *index,
		Percent:       *percent,
		EdgeMode:      quickfilter.EdgeMode(*edgeMode),
		TruncateMode:  quickfilter.TruncateMode(*truncateMode),
		ConstantValue: *cval,
	}

	effectivePercent := *percent
	if *index >= 0 {
		effectivePercent = float64(*index) / float64(*windowSize)
	}

	// The rolling-median comparator only computes medians, and for even
	// windows it averages the two middle samples, so its output is only
	// checked against ours for odd windows.
	medianRun := *index < 0 && *percent == 0.5
	medianComparable := medianRun && *windowSize%2 == 1 && params.TruncateMode != quickfilter.TruncateFull

	fmt.Printf("QuickFilter Benchmark\n")
	fmt.Printf("=====================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Signal Length: %d\n", *signalLen)
	fmt.Printf("  Window Size: %d\n", *windowSize)
	fmt.Printf("  Effective Percentile: %.6f\n", effectivePercent)
	fmt.Printf("  Edge Mode: %s\n", *edgeMode)
	fmt.Printf("  Truncate Mode: %s\n", *truncateMode)
	fmt.Printf("  Iterations: %d\n\n", *iterations)

	rng := rand.New(rand.NewSource(*seed))
	results := make([]iterationResult, 0, *iterations)

	for iter := 0; iter < *iterations; iter++ {
		signal := make([]float64, *signalLen)
		for i := range signal {
			signal[i] = rng.NormFloat64()
		}

		start := time.Now()
		filtered, err := quickfilter.Filter(signal, params)
		quickNs := float64(time.Since(start).Nanoseconds())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running filter: %v\n", err)
			os.Exit(1)
		}

		start = time.Now()
		naive := naiveFilter(signal, params, effectivePercent)
		naiveNs := float64(time.Since(start).Nanoseconds())

		diff := append([]float64(nil), filtered...)
		floats.Sub(diff, naive)
		absDiff := floats.Norm(diff, 1)

		res := iterationResult{QuickNs: quickNs, NaiveNs: naiveNs, AbsDiffVsNaive: absDiff}

		if medianRun {
			working := workingSignal(signal, params)
			start = time.Now()
			rolling := rollingMedian(working, *windowSize)
			res.RollingNs = float64(time.Since(start).Nanoseconds())

			if medianComparable {
				rdiff := append([]float64(nil), filtered...)
				floats.Sub(rdiff, rolling)
				if norm := floats.Norm(rdiff, 1); norm > 1e-9 {
					log.Errorf("rolling-median mismatch on iteration %d: summed difference %g", iter, norm)
				}
			}
		}

		log.Debugw("iteration complete",
			"iteration", iter,
			"quickfilter_ns", quickNs,
			"naive_ns", naiveNs,
			"abs_diff", absDiff,
		)
		results = append(results, res)
	}

	report(results, medianRun)

	if *csvOutput != "" {
		if err := writeCSV(*csvOutput, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nPer-iteration timings written to %s\n", *csvOutput)
	}
}

// workingSignal reproduces the buffer the sliding pass runs over, so the
// rolling-median comparator sees the same samples the filter does.
func workingSignal(signal []float64, p quickfilter.Params) []float64 {
	w := p.WindowSize
	switch p.TruncateMode {
	case quickfilter.TruncateSame:
		half := w / 2
		return reference.Extend(signal, half, w-half, string(p.EdgeMode), p.ConstantValue)
	case quickfilter.TruncateFull:
		return reference.Extend(signal, w-1, w-1, string(p.EdgeMode), p.ConstantValue)
	default:
		return signal
	}
}

// naiveFilter mirrors quickfilter's windowing contract using the brute-force
// reference primitives.
func naiveFilter(signal []float64, p quickfilter.Params, percent float64) []float64 {
	w := p.WindowSize
	switch p.TruncateMode {
	case quickfilter.TruncateValid:
		return reference.RankFilter(signal, w, percent)
	case quickfilter.TruncateFull:
		ext := reference.Extend(signal, w-1, w-1, string(p.EdgeMode), p.ConstantValue)
		out := reference.RankFilter(ext, w, percent)

		// The shared pass stops one window short; flush the last one.
		last := append([]float64(nil), ext[len(ext)-w:]...)
		sort.Float64s(last)
		idx := int(float64(w) * percent)
		if idx >= w {
			idx = w - 1
		}
		return append(out, last[idx])
	default:
		half := w / 2
		ext := reference.Extend(signal, half, w-half, string(p.EdgeMode), p.ConstantValue)
		return reference.RankFilter(ext, w, percent)
	}
}

// rollingMedian produces one median per complete window emitted by the
// sliding pass over working: windows [j, j+w-1] for j in [0, len(working)-w).
func rollingMedian(working []float64, w int) []float64 {
	mm := movingmedian.NewMovingMedian(w)
	out := make([]float64, 0, len(working)-w)
	for i, v := range working {
		mm.Push(v)
		if i >= w-1 && i < len(working)-1 {
			out = append(out, mm.Median())
		}
	}
	return out
}

func report(results []iterationResult, medianRun bool) {
	quick := make([]float64, len(results))
	naive := make([]float64, len(results))
	rolling := make([]float64, 0, len(results))
	totalDiff := 0.0
	for i, r := range results {
		quick[i] = r.QuickNs
		naive[i] = r.NaiveNs
		totalDiff += r.AbsDiffVsNaive
		if r.RollingNs > 0 {
			rolling = append(rolling, r.RollingNs)
		}
	}

	sortedQuick := append([]float64(nil), quick...)
	sort.Float64s(sortedQuick)

	fmt.Printf("Results:\n")
	fmt.Printf("  quickfilter:    mean %s  stddev %s  p50 %s  p95 %s\n",
		ns(stat.Mean(quick, nil)), ns(stat.StdDev(quick, nil)),
		ns(stat.Quantile(0.5, stat.Empirical, sortedQuick, nil)),
		ns(stat.Quantile(0.95, stat.Empirical, sortedQuick, nil)))
	fmt.Printf("  brute force:    mean %s  stddev %s  (speedup %.2fx)\n",
		ns(stat.Mean(naive, nil)), ns(stat.StdDev(naive, nil)),
		stat.Mean(naive, nil)/stat.Mean(quick, nil))
	if medianRun && len(rolling) > 0 {
		fmt.Printf("  rolling median: mean %s  (ratio %.2fx)\n",
			ns(stat.Mean(rolling, nil)), stat.Mean(rolling, nil)/stat.Mean(quick, nil))
	}
	fmt.Printf("  summed |difference| vs brute force: %g\n", totalDiff)
}

func ns(v float64) string {
	return time.Duration(int64(v)).String()
}

func writeCSV(path string, results []iterationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "quickfilter_ns", "naive_ns", "rolling_median_ns", "abs_diff"}); err != nil {
		return err
	}
	for i, r := range results {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(r.QuickNs, 'f', 0, 64),
			strconv.FormatFloat(r.NaiveNs, 'f', 0, 64),
			strconv.FormatFloat(r.RollingNs, 'f', 0, 64),
			strconv.FormatFloat(r.AbsDiffVsNaive, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
