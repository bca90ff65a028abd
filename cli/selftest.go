package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/warp/fc60/fc60"
)

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Recompute the embedded regression vectors",
		Long: `Recompute every embedded vector (JDN round trips, tokens, Ganzhi years
and reference stamps). Exits with code 1 when any vector fails.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := fc60.RunSelfTest()

			err := rootOpts.formatter(cmd).Render(res, func(w io.Writer) {
				for _, v := range res.Results {
					status := "ok"
					if !v.Pass {
						status = "FAIL"
					}
					fmt.Fprintf(w, "%-4s %s = %s", status, v.Name, v.Got)
					if !v.Pass {
						fmt.Fprintf(w, " (want %s)", v.Want)
					}
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%d passed, %d failed\n", res.Passed, res.Failed)
			})
			if err != nil {
				return err
			}
			if !res.OK() {
				return NewExitError(ExitFailure, fmt.Sprintf("%d vector(s) failed", res.Failed))
			}
			return nil
		},
	}
}
