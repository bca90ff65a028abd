/*
root.go - Command-line entry point for the FC60 engine

PURPOSE:
  Exposes the engine as a cobra command tree. Every subcommand renders
  its result as text, JSON or YAML through one OutputFormatter, so the
  CLI and the HTTP API share the same JSON field names.

COMMANDS:
  fc60 stamp [moment]          Encode a moment (default: now)
  fc60 decode <stamp>          Decode a stamp back to its fields
  fc60 base60 encode <n>       Integer to base-60 tokens
  fc60 base60 decode <tokens>  Base-60 tokens to integer
  fc60 jdn <date|jdn>          Julian Day Number conversions
  fc60 numerology              Numerology profile for a name and birth date
  fc60 sync <numbers...>       Synchronicity patterns in numbers or text
  fc60 read                    Combined reading from flags or a JSON request
  fc60 selftest                Recompute the embedded regression vectors

SEE ALSO:
  - output.go: Formatter and exit codes
  - cmd/fc60/main.go: Process entry
*/
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string

	// Now is the clock for commands that default to the current moment.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// NewRootCommand creates the root command with the wall clock.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Now: time.Now})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fc60",
		Short: "FC60 calendrical and numerology engine",
		Long: `Encode moments as FC60 stamps, convert base-60 numbers and day counts,
compute numerology profiles, and detect number synchronicities.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(NewStampCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewBase60Command(opts))
	cmd.AddCommand(NewJDNCommand(opts))
	cmd.AddCommand(NewNumerologyCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewReadCommand(opts))
	cmd.AddCommand(NewSelfTestCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
