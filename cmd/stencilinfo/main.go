// Command stencilinfo runs the 3x3 stencil engine on a synthetic image and
// prints timing and accuracy figures per kernel implementation.
//
// Usage:
//
//	stencilinfo [flags] [kernel-name ...]
//
// Without arguments it runs the box kernel.
//
// Examples:
//
//	stencilinfo -smoke
//	stencilinfo -size 1920x1080 sobel-x gaussian
//	stencilinfo -check -impl generic laplacian
//	stencilinfo -workers 4 -runs 20 blur
//	stencilinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-stencil/dsp/stencil"
	"github.com/cwbudde/algo-stencil/dsp/stencil/diag"
	"github.com/cwbudde/algo-stencil/internal/reference"
)

type runConfig struct {
	width   int
	height  int
	workers int
	runs    int
	impls   []string
	check   bool
}

func main() {
	size := flag.String("size", "1024x1024", "image size as WIDTHxHEIGHT")
	smoke := flag.Bool("smoke", false, "run the 3x3 pad/unpad smoke test and exit")
	pad := flag.Int("pad", 1, "pad size used by -smoke")
	check := flag.Bool("check", false, "compare output against the naive and FFT references")
	workers := flag.Int("workers", 1, "number of goroutines processing row bands")
	impl := flag.String("impl", "", "kernel implementation to run (default: all usable)")
	runs := flag.Int("runs", 5, "timed runs per configuration")
	list := flag.Bool("list", false, "list kernel presets and usable implementations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stencilinfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the 3x3 stencil on a synthetic image and prints timing\n")
		fmt.Fprintf(os.Stderr, "and accuracy for each kernel implementation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -smoke -pad 2\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -size 1920x1080 sobel-x gaussian\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -check -impl generic laplacian\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if *smoke {
		if err := diag.SmokeTest(os.Stdout, *pad); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"box"}
	}

	cfg := runConfig{
		width:   w,
		height:  h,
		workers: *workers,
		runs:    max(*runs, 1),
		impls:   stencil.Implementations(),
		check:   *check,
	}
	if *impl != "" {
		cfg.impls = []string{*impl}
	}

	if err := printRuns(os.Stdout, names, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "Kernels:")
	for _, name := range stencil.PresetNames() {
		k, _ := stencil.Preset(name)
		fmt.Fprintf(w, "  %-10s %v\n", name, k)
	}

	fmt.Fprintln(w, "Implementations:")
	for _, name := range stencil.Implementations() {
		mark := ""
		if name == stencil.Implementation() {
			mark = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", name, mark)
	}
}

// parseSize parses "WxH" (case-insensitive x).
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}

	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}

	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}

	return w, h, nil
}

type result struct {
	kernel   string
	impl     string
	perRun   time.Duration
	mpixPerS float64
	summary  diag.Summary
	naive    float64
	fft      float64
}

func printRuns(out io.Writer, names []string, cfg runConfig) error {
	src, err := stencil.ImageFrom(cfg.width, cfg.height, syntheticImage(cfg.width, cfg.height))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := "Kernel\tImpl\tSize\tWorkers\tTime/op\tMPix/s\tMean\tRMS"
	rule := "------\t----\t----\t-------\t-------\t------\t----\t---"
	if cfg.check {
		header += "\tMaxDiff naive\tMaxDiff fft"
		rule += "\t-------------\t-----------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, name := range names {
		k, err := stencil.Preset(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		for _, impl := range cfg.impls {
			r, err := runOne(src, k, impl, cfg)
			if err != nil {
				return err
			}
			r.kernel = name

			row := fmt.Sprintf("%s\t%s\t%dx%d\t%d\t%v\t%.1f\t%.6f\t%.6f",
				r.kernel, r.impl, cfg.width, cfg.height, cfg.workers,
				r.perRun, r.mpixPerS, r.summary.Mean, r.summary.RMS)
			if cfg.check {
				row += fmt.Sprintf("\t%.3g\t%.3g", r.naive, r.fft)
			}
			if _, err := fmt.Fprintln(tw, row); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}

	return tw.Flush()
}

func runOne(src stencil.Image, k stencil.Kernel, impl string, cfg runConfig) (result, error) {
	c, err := stencil.NewCorrelator(k, stencil.WithImplementation(impl), stencil.WithWorkers(cfg.workers))
	if err != nil {
		return result{}, err
	}

	dst, err := stencil.NewImage(src.Width, src.Height)
	if err != nil {
		return result{}, err
	}

	// Warm-up run, also the output that gets checked.
	if err := c.Process(dst, src); err != nil {
		return result{}, err
	}

	start := time.Now()
	for range cfg.runs {
		if err := c.Process(dst, src); err != nil {
			return result{}, err
		}
	}
	perRun := time.Since(start) / time.Duration(cfg.runs)

	r := result{
		impl:    c.Implementation(),
		perRun:  perRun,
		summary: diag.Summarize(dst),
	}
	if perRun > 0 {
		r.mpixPerS = float64(src.Len()) / perRun.Seconds() / 1e6
	}

	if cfg.check {
		taps := [9]float32(k)

		naive, err := stencil.ImageFrom(src.Width, src.Height, reference.Naive(src.Data, src.Width, src.Height, &taps))
		if err != nil {
			return result{}, err
		}
		if r.naive, err = diag.MaxAbsDiff(dst, naive); err != nil {
			return result{}, err
		}

		ref, err := reference.FFT(src.Data, src.Width, src.Height, &taps)
		if err != nil {
			return result{}, err
		}
		if r.fft, err = diag.MaxAbsDiff64(dst, ref); err != nil {
			return result{}, err
		}

		if r.naive != 0 {
			return r, errors.New("output differs from the naive reference")
		}
	}

	return r, nil
}

func syntheticImage(w, h int) []float32 {
	rng := rand.New(rand.NewSource(1))

	data := make([]float32, w*h)
	for i := range data {
		data[i] = rng.Float32()*2 - 1
	}

	return data
}
