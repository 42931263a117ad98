package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gosat/yass/internal/dimacs"
	"github.com/gosat/yass/internal/sat"
	"github.com/gosat/yass/internal/verify"
)

var (
	flagHeuristic   = flag.String("heuristics", "vsids", "decision heuristic: ascending, dlis, or vsids")
	flagNoBCP       = flag.Bool("no-bcp", false, "disable two-watched-literal boolean constraint propagation")
	flagCheck       = flag.Bool("check", false, "verify the produced model against the original clauses")
	flagSatisfiable = flag.Bool("satisfiable", false, "paired with -check: the expected verdict for this instance")
	flagMaxSteps    = flag.Int("max-steps", 0, "abort the search after this many decisions (0 means unbounded)")
	flagGzip        = flag.Bool("gzip", false, "the instance file is gzip-compressed")
	flagCPUProfile  = flag.String("cpuprofile", "", "write a pprof CPU profile to this path")
	flagMemProfile  = flag.String("memprofile", "", "write a pprof heap profile to this path")
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(os.Getenv("YASS_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

type config struct {
	instanceFile string
	gzipped      bool
	heuristic    string
	noBCP        bool
	check        bool
	satisfiable  bool
	maxSteps     int
	cpuProfile   string
	memProfile   string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	if *flagCheck && !flagSatisfiableSet() {
		return nil, fmt.Errorf("-check requires -satisfiable to be set explicitly")
	}
	switch *flagHeuristic {
	case "ascending", "dlis", "vsids":
	default:
		return nil, fmt.Errorf("unknown heuristic %q: want ascending, dlis, or vsids", *flagHeuristic)
	}

	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		heuristic:    *flagHeuristic,
		noBCP:        *flagNoBCP,
		check:        *flagCheck,
		satisfiable:  *flagSatisfiable,
		maxSteps:     *flagMaxSteps,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
	}, nil
}

// flagSatisfiableSet reports whether -satisfiable was named explicitly on
// the command line, as opposed to defaulting to false.
func flagSatisfiableSet() bool {
	seen := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "satisfiable" {
			seen = true
		}
	})
	return seen
}

func newHeuristic(name string) sat.Heuristic {
	switch name {
	case "ascending":
		return sat.NewAscending()
	case "dlis":
		return sat.NewDLIS()
	default:
		return sat.NewVSIDS()
	}
}

// noBCP forces a heuristic's WantsBCP() to false, powering the -no-bcp flag
// without every heuristic needing its own disabled variant.
type noBCP struct {
	sat.Heuristic
}

func (noBCP) WantsBCP() bool { return false }

func run(cfg *config) error {
	problem, err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		log.WithError(err).Error("could not parse instance")
		return fmt.Errorf("could not parse instance: %w", err)
	}

	h := newHeuristic(cfg.heuristic)
	if cfg.noBCP {
		h = noBCP{h}
	}
	s := sat.NewSolver(problem, h, cfg.maxSteps)

	fmt.Printf("c variables: %d\n", problem.NumVars())
	fmt.Printf("c clauses:   %d\n", problem.Clauses.Len())

	start := time.Now()
	verdict, stack := s.Solve()
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:  %d\n", s.Stats.Decisions)
	fmt.Printf("c propagations: %d\n", s.Stats.Propagations)
	fmt.Printf("c backtracks: %d\n", s.Stats.Backtracks)
	fmt.Printf("c status:     %s\n", verdict)

	log.WithFields(logrus.Fields{
		"verdict":    verdict.String(),
		"decisions":  s.Stats.Decisions,
		"backtracks": s.Stats.Backtracks,
	}).Debug("search finished")

	switch verdict {
	case sat.SAT:
		model := sat.Model(problem, stack)
		fmt.Printf("RESULT: SAT\n")
		fmt.Printf("ASSIGNMENT:")
		for v := sat.Variable(1); int(v) <= problem.NumVars(); v++ {
			pol, ok := model[v]
			if !ok {
				continue
			}
			b := 0
			if pol == sat.On {
				b = 1
			}
			fmt.Printf(" %d=%d", v, b)
		}
		fmt.Println()
		if cfg.check {
			return checkResult(problem, model, true, cfg.satisfiable)
		}
	case sat.UNSAT:
		fmt.Println("RESULT: UNSAT")
		if cfg.check {
			return checkResult(problem, nil, false, cfg.satisfiable)
		}
	default:
		fmt.Println("RESULT: UNKNOWN")
	}

	return nil
}

// checkResult enforces the -check/-satisfiable contract: the observed
// outcome must match what the caller asserted, and a claimed SAT model must
// actually satisfy every clause.
func checkResult(p *sat.Problem, model map[sat.Variable]sat.Polarity, gotSAT, wantSAT bool) error {
	if gotSAT != wantSAT {
		return fmt.Errorf("-check: got %s, -satisfiable asserted the opposite", map[bool]string{true: "SAT", false: "UNSAT"}[gotSAT])
	}
	if gotSAT && !verify.Verify(p, model) {
		return fmt.Errorf("-check: model does not satisfy the instance")
	}
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid arguments")
	}

	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			log.WithError(err).Fatal("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("run failed")
	}

	if cfg.memProfile != "" {
		f, err := os.Create(cfg.memProfile)
		if err != nil {
			log.WithError(err).Fatal("could not create memory profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Fatal("could not write memory profile")
		}
	}
}
