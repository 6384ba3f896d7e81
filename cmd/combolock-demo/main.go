package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MrEthical07/combolock"
	"github.com/MrEthical07/combolock/metrics/export/prometheus"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	about string
	run   func(smith *combolock.Locksmith, out io.Writer) error
}

var scenarios = map[string]scenario{
	"mutable": {
		about: "single lock keyed after construction",
		run:   runMutable,
	},
	"mutable-hashed": {
		about: "single lock keyed after construction, sha1-hashed",
		run:   runMutableHashed,
	},
	"class": {
		about: "two locks with fixed combinations",
		run:   runClass,
	},
	"class-mixed": {
		about: "a plain lock and a sha1 lock sharing one contract",
		run:   runClassMixed,
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("combolock-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (validator, password, metrics, audit)")
		validator  = fs.String("validator", "", "override validator: plain, sha1, argon2id")
		name       = fs.String("scenario", "all", "scenario to run: all, "+strings.Join(scenarioNames(), ", "))
		audit      = fs.Bool("audit", false, "write JSON audit events to stderr")
		metrics    = fs.Bool("metrics", false, "print Prometheus metrics after the run")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	if *validator != "" {
		cfg.Validator = *validator
	}
	if *audit {
		cfg.Audit.Enabled = true
		cfg.Audit.DropIfFull = false
	}
	if *metrics {
		cfg.Metrics.Enabled = true
	}

	for _, w := range cfg.Lint() {
		fmt.Fprintf(stderr, "config warning [%s]: %s\n", w.Code, w.Message)
	}

	smith, err := combolock.NewBuilder().
		WithConfig(cfg).
		WithAuditSink(combolock.NewJSONWriterSink(stderr)).
		Build()
	if err != nil {
		fmt.Fprintf(stderr, "build: %v\n", err)
		return 1
	}

	selected := scenarioNames()
	if *name != "all" {
		if _, ok := scenarios[*name]; !ok {
			smith.Close()
			fmt.Fprintf(stderr, "unknown scenario %q\n", *name)
			return 2
		}
		selected = []string{*name}
	}

	for _, n := range selected {
		s := scenarios[n]
		fmt.Fprintf(stdout, "== %s: %s\n", n, s.about)
		if err := s.run(smith, stdout); err != nil {
			smith.Close()
			fmt.Fprintf(stderr, "%s: %v\n", n, err)
			return 1
		}
	}

	smith.Close()

	if *metrics {
		fmt.Fprint(stdout, prometheus.NewExporter(smith).Render())
	}
	return 0
}

func loadConfig(path string) (combolock.Config, error) {
	cfg := combolock.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func report(out io.Writer, label string, l combolock.Lockable) {
	fmt.Fprintf(out, "%s locked? %v\n", label, l.Locked())
}

func runMutable(smith *combolock.Locksmith, out io.Writer) error {
	l, err := smith.NewMutable()
	if err != nil {
		return err
	}
	return mutableSteps(l, out)
}

func runMutableHashed(smith *combolock.Locksmith, out io.Writer) error {
	l, err := smith.NewMutable(combolock.WithValidator(combolock.HashedEquality{}))
	if err != nil {
		return err
	}
	return mutableSteps(l, out)
}

func mutableSteps(l *combolock.MutableLock, out io.Writer) error {
	l.SetPassword("1337")
	l.Lock()
	report(out, "combo_lock", l)

	l.Unlock("1336")
	report(out, "combo_lock", l)

	l.Unlock("1337")
	report(out, "combo_lock", l)
	return nil
}

func runClass(smith *combolock.Locksmith, out io.Writer) error {
	a, err := smith.NewLock("1337")
	if err != nil {
		return err
	}
	b, err := smith.NewLock("1234")
	if err != nil {
		return err
	}
	return pairSteps(a, b, out)
}

func runClassMixed(smith *combolock.Locksmith, out io.Writer) error {
	a, err := smith.NewLock("1337", combolock.WithValidator(combolock.PlainEquality{}))
	if err != nil {
		return err
	}
	b, err := smith.NewLock("1234", combolock.WithValidator(combolock.HashedEquality{}))
	if err != nil {
		return err
	}
	return pairSteps(a, b, out)
}

func pairSteps(a, b combolock.Lockable, out io.Writer) error {
	a.Unlock("1337")
	b.Unlock("1337")
	report(out, "combo_lock_a", a)
	report(out, "combo_lock_b", b)

	b.Unlock("1234")
	report(out, "combo_lock_b", b)
	return nil
}
