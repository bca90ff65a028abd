package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/fc60/factory"
	"github.com/warp/fc60/numerology"
	"github.com/warp/fc60/reading"
)

type readOptions struct {
	request string
	req     factory.ReadingRequestJSON
	sign    string
}

// NewReadCommand creates the read command.
func NewReadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &readOptions{}

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Produce a combined reading",
		Long: `Combine number extraction, the FC60 encoding of a moment, moon, Ganzhi,
zodiac, numerology and synchronicity detection into one reading.

Input comes from flags or, with --request, from a JSON request body in the
same schema as POST /api/readings ("-" reads stdin). Facets that cannot be
computed are reported as warnings; the command still succeeds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(rootOpts, opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.request, "request", "", "JSON request file, or - for stdin")
	f.StringVar(&opts.req.Text, "text", "", "free text to scan for numbers")
	f.StringVar(&opts.sign, "sign", "", "a number that caught your attention")
	f.StringVar(&opts.req.Time, "time", "", "clock time HH:MM[:SS]")
	f.StringVar(&opts.req.Date, "date", "", "ISO-8601 date or datetime")
	f.StringVar(&opts.req.TZ, "tz", "", "UTC offset for a date without one")
	f.StringVar(&opts.req.Name, "name", "", "full name for numerology")
	f.StringVar(&opts.req.Birth, "birth", "", "birth date for numerology")
	f.StringVar(&opts.req.System, "system", "", "numerology letter system")
	f.StringVar(&opts.req.Today, "today", "", "date anchoring the personal cycle")
	cmd.MarkFlagsMutuallyExclusive("request", "text")
	cmd.MarkFlagsMutuallyExclusive("request", "date")

	return cmd
}

func runRead(rootOpts *RootOptions, opts *readOptions, cmd *cobra.Command) error {
	requests := factory.NewRequestFactory(numerology.Pythagorean, 0)

	var in reading.Input
	var err error
	if opts.request != "" {
		body, readErr := readRequest(opts.request, cmd.InOrStdin())
		if readErr != nil {
			return WrapExitError(ExitCommandError, "read request", readErr)
		}
		in, err = requests.ParseRequest(body)
	} else {
		rj := opts.req
		if opts.sign != "" {
			rj.Sign, _ = json.Marshal(opts.sign)
		}
		in, err = requests.FromJSON(rj)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid request", err)
	}

	r := reading.Read(in)
	return rootOpts.formatter(cmd).Render(r, func(w io.Writer) {
		writeReading(w, r)
	})
}

func readRequest(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeReading(w io.Writer, r reading.Reading) {
	field(w, "Numbers", "%s", joinInts(r.Numbers))
	if r.FC60 != nil {
		writeEncoding(w, *r.FC60)
	}
	if r.Zodiac != nil {
		field(w, "Zodiac", "%s %s (%s, %s)", r.Zodiac.Symbol, r.Zodiac.Sign, r.Zodiac.Element, r.Zodiac.Planet)
	}
	if r.Numerology != nil {
		fmt.Fprintln(w)
		writeProfile(w, *r.Numerology)
	}
	fmt.Fprintln(w)
	writeMatches(w, r.Synchronicities)
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", warn.Facet, warn.Message)
	}
}
