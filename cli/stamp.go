package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/fc60/api"
	"github.com/warp/fc60/fc60"
)

type stampOptions struct {
	tz       string
	dateOnly bool
}

// NewStampCommand creates the stamp command.
func NewStampCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &stampOptions{}

	cmd := &cobra.Command{
		Use:   "stamp [moment]",
		Short: "Encode a moment as an FC60 stamp",
		Long: `Encode an ISO-8601 date or datetime with every FC60 facet: the stamp,
base-60 day counts, moon phase, Ganzhi pillars and checksum.

Without an argument the current time is encoded in the --tz offset.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.tz, "tz", "+00:00", "UTC offset for moments that carry none")
	cmd.Flags().BoolVar(&opts.dateOnly, "date-only", false, "encode the date half only")

	return cmd
}

func runStamp(rootOpts *RootOptions, opts *stampOptions, args []string, cmd *cobra.Command) error {
	offset, err := fc60.ParseOffset(opts.tz)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --tz", err)
	}

	var m fc60.CalendarMoment
	if len(args) == 1 {
		m, err = fc60.ParseMomentInZone(args[0], offset)
	} else {
		m, err = fc60.FromTime(rootOpts.Now().In(time.FixedZone("", offset*60)))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid moment", err)
	}

	var encOpts []fc60.Option
	if opts.dateOnly {
		encOpts = append(encOpts, fc60.WithDateOnly())
	}
	enc, err := fc60.Encode(m, encOpts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "encode", err)
	}

	return rootOpts.formatter(cmd).Render(enc, func(w io.Writer) {
		writeEncoding(w, enc)
	})
}

func writeEncoding(w io.Writer, enc fc60.Encoding) {
	field(w, "Stamp", "%s", enc.Stamp)
	field(w, "ISO", "%s", enc.ISO)
	field(w, "TZ60", "%s", enc.TZ60)
	field(w, "Weekday", "%s (%s): %s", enc.WeekdayName, enc.WeekdayPlanet, enc.WeekdayDomain)
	field(w, "Year", "%s, y2k %s", enc.Y60, enc.Y2K)
	field(w, "JDN", "%d = %s", enc.JDN, enc.J60)
	field(w, "MJD", "%d = %s", enc.MJD, enc.MJD60)
	field(w, "RD", "%d = %s", enc.RD, enc.RD60)
	field(w, "Unix", "%d = %s", enc.Unix, enc.U60)
	field(w, "Moon", "%s %s, age %v days, %v%% lit", enc.MoonEmoji, enc.MoonPhaseName, enc.MoonAge, enc.MoonIllumination)

	gz := fmt.Sprintf("%s %s (%s), day %s", enc.GZToken, enc.GZName, enc.GZPolarity, enc.GZDayToken)
	if enc.GZHourToken != "" {
		gz += ", hour " + enc.GZHourToken
	}
	field(w, "Ganzhi", "%s", gz)
	field(w, "Checksum", "%s", enc.Chk)
}

// =============================================================================
// DECODE
// =============================================================================

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <stamp>",
		Short: "Decode an FC60 stamp",
		Long: `Decode a stamp such as "VE-OX-OXFI ☀OX-RUWU-RAWU" back to weekday,
month, day and, when present, time of day. Unquoted halves are joined.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stamp := strings.Join(args, " ")
			f, err := fc60.DecodeStamp(stamp)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid stamp", err)
			}

			out := api.NewStampFieldsDTO(stamp, f)
			return rootOpts.formatter(cmd).Render(out, func(w io.Writer) {
				field(w, "Weekday", "%s (%s)", f.Weekday.Name, f.Weekday.Token)
				field(w, "Month", "%d (%s)", f.Month, fc60.AnimalName(f.Month-1))
				field(w, "Day", "%d", f.Day)
				if f.HasTime {
					field(w, "Time", "%02d:%02d:%02d", f.Hour, f.Minute, f.Second)
				}
			})
		},
	}
}
