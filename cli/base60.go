package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/fc60/api"
	"github.com/warp/fc60/fc60"
)

// NewBase60Command creates the base60 command group.
func NewBase60Command(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base60",
		Short: "Convert integers to and from base-60 tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "encode <n>",
		Short:         "Encode an integer as base-60 tokens",
		Long:          "Encode an integer as base-60 tokens. Pass negative values after --, e.g. fc60 base60 encode -- -61.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid integer", err)
			}
			res := api.NewBase60DTO(n)
			return rootOpts.formatter(cmd).Render(res, func(w io.Writer) {
				fmt.Fprintln(w, res.Base60)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "decode <tokens>",
		Short:         "Decode base-60 tokens such as NEG-RAFI-RAWU",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := fc60.DecodeBase60(strings.ToUpper(args[0]))
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid base-60 tokens", err)
			}
			res := api.NewBase60DTO(n)
			return rootOpts.formatter(cmd).Render(res, func(w io.Writer) {
				fmt.Fprintln(w, res.N)
			})
		},
	})

	return cmd
}

// =============================================================================
// JDN
// =============================================================================

// NewJDNCommand creates the jdn command.
func NewJDNCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "jdn <date|jdn>",
		Short: "Convert between calendar dates and Julian Day Numbers",
		Long: `Given a YYYY-MM-DD date, print its Julian Day Number and related counts.
Given an integer, print the proleptic Gregorian date of that JDN.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jdn, err := parseDayArg(args[0])
			if err != nil {
				return err
			}

			date, err := fc60.DateFromJDN(jdn)
			if err != nil {
				return WrapExitError(ExitCommandError, "date out of range", err)
			}
			res := api.NewJDNDTO(date)

			return rootOpts.formatter(cmd).Render(res, func(w io.Writer) {
				field(w, "Date", "%s (%s)", res.Date, res.Weekday.Name)
				field(w, "JDN", "%d = %s", res.JDN, res.J60)
				field(w, "MJD", "%d", res.MJD)
				field(w, "RD", "%d", res.RD)
			})
		},
	}
}

// parseDayArg accepts a date first so that "2026-02-06" is never read as
// an integer expression.
func parseDayArg(arg string) (int64, error) {
	if m, err := fc60.ParseMoment(arg); err == nil {
		return m.JDN(), nil
	}
	jdn, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("%q is neither a date nor a JDN", arg))
	}
	return jdn, nil
}
