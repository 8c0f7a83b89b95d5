package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pborges/logicloom"
	"github.com/pborges/logicloom/internal/input"
	"github.com/pborges/logicloom/internal/problem"
	"github.com/pborges/logicloom/internal/qm"
	"github.com/pborges/logicloom/internal/render"
	"github.com/pborges/logicloom/internal/verify"
)

type options struct {
	vars          string
	minterms      string
	output        string
	all           bool
	pichart       string
	pitable       string
	essentials    string
	demo          bool
	file          string
	verify        bool
	maxCandidates int
	debug         bool
	version       bool
}

func (o *options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.vars, "vars", "v", "", "comma-separated variable names, e.g. A,B,C")
	fs.StringVarP(&o.minterms, "minterms", "m", "", "comma-separated minterm numbers, e.g. 0,1,2")
	fs.StringVar(&o.output, "output", "string", "equation format: string, latex, both, html or mathjax")
	fs.BoolVar(&o.all, "all", false, "print every minimal cover")
	fs.StringVar(&o.pichart, "pichart", "", "print the prime implicant chart: terminal, latex or html")
	fs.StringVar(&o.pitable, "pitable", "", "print the prime implicants: terminal")
	fs.StringVar(&o.essentials, "essentials", "", "print the essential prime implicants: terminal")
	fs.BoolVar(&o.demo, "demo", false, "run the bundled demo problems")
	fs.StringVar(&o.file, "file", "", "run the problems in a YAML file")
	fs.BoolVar(&o.verify, "verify", false, "cross-check every cover with BDD and SAT engines")
	fs.IntVar(&o.maxCandidates, "max-candidates", 0, "abort when the covering search holds more partial covers (0 for no limit)")
	fs.BoolVar(&o.debug, "debug", false, "use debug log level")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
}

func oneOf(flag, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Errorf("invalid --%s %q, want one of %v", flag, value, allowed)
}

func (o *options) validate() error {
	if o.output == "" {
		return errors.New("--output must not be empty")
	}
	for _, err := range []error{
		oneOf("output", o.output, "string", "latex", "both", "html", "mathjax"),
		oneOf("pichart", o.pichart, "terminal", "latex", "html"),
		oneOf("pitable", o.pitable, "terminal"),
		oneOf("essentials", o.essentials, "terminal"),
	} {
		if err != nil {
			return err
		}
	}
	if o.demo && o.file != "" {
		return errors.New("--demo and --file are mutually exclusive")
	}
	if !o.demo && o.file == "" && (o.vars == "" || o.minterms == "") {
		return errors.New("provide --vars and --minterms, or use --demo or --file")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "logicloom",
		Short:        "Boolean logic minimization toolkit",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Fprintln(cmd.OutOrStdout(), logicloom.Version())
				return nil
			}
			if err := o.validate(); err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			return o.run(cmd.OutOrStdout(), logger)
		},
	}
	o.AddFlags(cmd.Flags())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func (o *options) problems() ([]problem.Problem, error) {
	switch {
	case o.demo:
		return problem.Demo(), nil
	case o.file != "":
		return problem.LoadFile(o.file)
	}
	vars, err := input.ParseVariables(o.vars)
	if err != nil {
		return nil, err
	}
	ms, err := input.ParseMinterms(o.minterms)
	if err != nil {
		return nil, err
	}
	return []problem.Problem{{Variables: vars, Minterms: ms}}, nil
}

func (o *options) run(out io.Writer, log logrus.FieldLogger) error {
	ps, err := o.problems()
	if err != nil {
		return err
	}
	for i, p := range ps {
		if len(ps) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s\n", p.Name)
		}
		if err := o.solve(out, log.WithField("problem", p.Name), p); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) solve(out io.Writer, log logrus.FieldLogger, p problem.Problem) error {
	s, err := p.Simplifier(qm.WithLogger(log), qm.WithMaxCandidates(o.maxCandidates))
	if err != nil {
		return err
	}
	covers, err := s.Covers()
	if err != nil {
		return err
	}
	if !o.all {
		covers = covers[:1]
	}
	vars := s.Variables()
	if err := o.printEquations(out, render.Equations(vars, covers)); err != nil {
		return err
	}

	if o.pitable == "terminal" {
		primes, err := s.PrimeImplicants()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPrime implicants\n%s\n", render.ImplicantTable(vars, primes))
	}
	if o.essentials == "terminal" {
		essentials, err := s.Essentials()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nEssential prime implicants\n%s\n", render.ImplicantTable(vars, essentials))
	}
	if o.pichart != "" {
		chart, err := s.Chart()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		switch o.pichart {
		case "terminal":
			fmt.Fprintln(out, render.ChartTable(chart, render.TerminalTick))
		case "latex":
			fmt.Fprintln(out, render.ChartLaTeX(chart, render.LaTeXTick))
		case "html":
			if err := render.ChartHTML(out, chart, "✓"); err != nil {
				return err
			}
		}
	}

	if o.verify {
		r, err := verify.Check(s)
		if err != nil {
			return err
		}
		if err := r.Err(); err != nil {
			for _, msg := range r.Problems {
				log.Error(msg)
			}
			return err
		}
		fmt.Fprintf(out, "\nVerified %d cover(s): %d terms, %d literals is optimal\n",
			len(r.Covers), r.Optimal.Terms, r.Optimal.Literals)
	}
	return nil
}

func (o *options) printEquations(out io.Writer, eqs []render.Equation) error {
	switch o.output {
	case "html":
		return render.EquationsHTML(out, eqs)
	case "mathjax":
		return render.LaTeXHTML(out, eqs)
	}
	for i, eq := range eqs {
		if len(eqs) > 1 {
			fmt.Fprintf(out, "Cover %d\n", i+1)
		}
		if o.output == "string" || o.output == "both" {
			fmt.Fprintln(out, eq.Text)
		}
		if o.output == "latex" || o.output == "both" {
			fmt.Fprintln(out, eq.Markup)
		}
		if i < len(eqs)-1 {
			fmt.Fprintln(out)
		}
	}
	return nil
}
