package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/fc60/api"
	"github.com/warp/fc60/factory"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/reading"
	"github.com/warp/fc60/synchro"
)

type numerologyOptions struct {
	name   string
	birth  string
	system string
	today  string
}

// NewNumerologyCommand creates the numerology command.
func NewNumerologyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &numerologyOptions{}

	cmd := &cobra.Command{
		Use:   "numerology",
		Short: "Compute a numerology profile",
		Long: `Compute life path, expression, soul urge, personality and the personal
year, month and day for a name and birth date.

Systems: pythagorean (pyth, western), chaldean (chal), abjad (arabic, persian).
The personal cycle is anchored on --today, which defaults to the current date.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNumerology(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&opts.birth, "birth", "", "birth date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.system, "system", string(numerology.Pythagorean), "letter system")
	cmd.Flags().StringVar(&opts.today, "today", "", "date anchoring the personal cycle")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

func runNumerology(rootOpts *RootOptions, opts *numerologyOptions, cmd *cobra.Command) error {
	table, err := factory.ParseSystem(opts.system)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --system", err)
	}
	birth, err := fc60.ParseMoment(opts.birth)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --birth", err)
	}

	var today fc60.CalendarMoment
	if opts.today != "" {
		today, err = fc60.ParseMoment(opts.today)
	} else {
		today, err = fc60.FromTime(rootOpts.Now())
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --today", err)
	}

	p, err := numerology.Profile(numerology.ProfileInput{Name: opts.name, Birth: birth, Today: today, Table: table})
	if err != nil {
		return WrapExitError(ExitFailure, "profile", err)
	}

	return rootOpts.formatter(cmd).Render(p, func(w io.Writer) {
		writeProfile(w, p)
	})
}

func writeProfile(w io.Writer, p numerology.NumerologyProfile) {
	field(w, "System", "%s", p.System)
	for _, row := range []struct {
		label string
		n     int
	}{
		{"Life path", p.LifePath},
		{"Expression", p.Expression},
		{"Soul urge", p.SoulUrge},
		{"Personality", p.Personality},
		{"Personal year", p.PersonalYear},
		{"Personal month", p.PersonalMonth},
		{"Personal day", p.PersonalDay},
	} {
		field(w, row.label, "%-3d %s", row.n, numerology.Meaning(row.n))
	}
}

// =============================================================================
// SYNC
// =============================================================================

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <numbers or text...>",
		Short: "Detect synchronicity patterns",
		Long: `Scan the digit runs of the arguments, in order, for angel numbers,
mirror times, repeats, palindromes, sequences and pair patterns.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := reading.ExtractNumbers(strings.Join(args, " "))
			if len(numbers) == 0 {
				return NewExitError(ExitCommandError, "no numbers found in input")
			}
			if err := reading.CheckNumbers(numbers); err != nil {
				return WrapExitError(ExitCommandError, "too many numbers", err)
			}
			res := api.SynchronicityResponse{Numbers: numbers, Matches: synchro.Detect(numbers)}

			return rootOpts.formatter(cmd).Render(res, func(w io.Writer) {
				field(w, "Numbers", "%s", joinInts(res.Numbers))
				writeMatches(w, res.Matches)
			})
		},
	}
}

func writeMatches(w io.Writer, matches []synchro.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No patterns found")
		return
	}
	for _, m := range matches {
		field(w, string(m.Kind), "%s", m.Description)
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
