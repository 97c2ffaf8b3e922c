// Command paramtrace replays a parameter scenario through an in-memory host
// and prints every change and binding notification it observes.
//
// Usage:
//
//	paramtrace -f scenario.yaml [--verbose] [--metrics]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-params/internal/scenario"
	"github.com/vcrobe/nojs-params/metrics"
)

type options struct {
	file    string
	verbose bool
	metrics bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("paramtrace", pflag.ContinueOnError)
	fs.StringVarP(&o.file, "file", "f", "", "Path to the scenario file")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log every synchronization")
	fs.BoolVar(&o.metrics, "metrics", false, "Print synchronization metrics after the run")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.file == "" {
		return o, errors.New("--file must be specified")
	}
	return o, nil
}

func newLogger(verbose bool) (logr.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, errors.Wrap(err, "cannot build logger")
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "paramtrace:", err)
		os.Exit(2)
	}

	log, flush, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "paramtrace:", err)
		os.Exit(1)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, log, os.Stdout); err != nil {
		log.Error(err, "Scenario failed")
		flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, log logr.Logger, out io.Writer) error {
	s, err := scenario.LoadFile(o.file)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(scenario.WithLogger(log), scenario.WithObserver(rec))
	events, runErr := runner.Run(ctx, s)
	for _, e := range events {
		fmt.Fprintln(out, e)
	}

	if o.metrics {
		mfs, err := reg.Gather()
		if err != nil {
			return errors.Wrap(err, "cannot gather metrics")
		}
		writeMetrics(out, mfs)
	}
	return runErr
}

// writeMetrics prints counters with their value and histograms with their
// sample count, one series per line.
func writeMetrics(out io.Writer, mfs []*dto.MetricFamily) {
	var lines []string
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			series := mf.GetName() + labels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				lines = append(lines, fmt.Sprintf("%s count=%d", series, m.GetHistogram().GetSampleCount()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
