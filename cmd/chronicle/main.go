package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jwebster45206/chronicle-engine/internal/savefile"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
	"github.com/jwebster45206/chronicle-engine/pkg/textfilter"
	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

const maxSaveBytes = 64 << 20

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, time.Now); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "chronicle: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	in           string
	out          string
	empire       string
	noYears      bool
	mode         string
	overrides    string
	seed         uint64
	requirements bool
	report       bool
	verbose      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("chronicle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "save file to read (.sav or extracted gamestate)")
	fs.StringVar(&opts.out, "out", "", "output file (default: dated export name; - for stdout)")
	fs.StringVar(&opts.empire, "empire", "", "player empire name")
	fs.BoolVar(&opts.noYears, "no-years", false, "leave out yearly marker events")
	fs.StringVar(&opts.mode, "mode", string(chronicle.ModeRandom), "generation mode: random or manual")
	fs.StringVar(&opts.overrides, "overrides", "", "JSON file of answers keyed by requirement key (manual mode)")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&opts.requirements, "requirements", false, "print the manual mode requirement list as JSON and exit")
	fs.BoolVar(&opts.report, "report", false, "print generation statistics to stderr")
	fs.BoolVar(&opts.verbose, "v", false, "log parser warnings to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.in == "" && fs.NArg() > 0 {
		opts.in = fs.Arg(0)
	}
	if opts.in == "" {
		fs.Usage()
		return nil, errors.New("a save file is required (-in)")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	mode, err := chronicle.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	log := slog.New(slog.DiscardHandler)
	if opts.verbose {
		log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	text, err := savefile.ReadFile(opts.in, maxSaveBytes)
	if err != nil {
		return err
	}
	seq, err := timeline.NewParser(log).Parse(text)
	if err != nil {
		return err
	}

	registry := chronicle.DefaultRegistry()
	reqs := chronicle.AnalyzeRequirements(seq, registry)
	if opts.requirements {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(reqs)
	}

	overrides, err := loadOverrides(opts.overrides)
	if err != nil {
		return err
	}
	if mode == chronicle.ModeManual {
		for _, m := range chronicle.Missing(reqs, overrides) {
			fmt.Fprintf(stderr, "missing answer for %s (%s %s)\n", m.Key, m.EventDate, m.PlaceholderLabel)
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}
	res := chronicle.Render(seq, registry, chronicle.Options{
		EmpireName:         textfilter.NewNameFilter(0).Clean(opts.empire),
		IncludeYearMarkers: !opts.noYears,
		Overrides:          overrides,
		Mode:               mode,
		Rand:               chronicle.NewRand(seed),
	})

	if opts.report {
		fmt.Fprint(stderr, chronicle.BuildReport(seq, registry, !opts.noYears).String())
	}

	out := opts.out
	if out == "" {
		out = chronicle.ExportFilename(now())
	}
	if out == "-" {
		_, err := io.WriteString(stdout, res.Text+"\n")
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, []byte(res.Text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write chronicle: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %d events to %s (%d year markers filtered)\n", len(res.Lines), out, res.Filtered)
	return nil
}

// loadOverrides reads a JSON object of answers and cleans every value.
func loadOverrides(path string) (chronicle.Overrides, error) {
	if path == "" {
		return chronicle.Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("overrides file %s must be a JSON object of strings: %w", path, err)
	}
	textfilter.NewNameFilter(0).CleanAll(raw)
	return chronicle.Overrides(raw), nil
}
