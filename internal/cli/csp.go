package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/cli/styles"
)

// NewCSPCmd builds the csp command, which runs the sandbox heuristic over a
// Content-Security-Policy header value. Useful when diagnosing why a page's
// scripting is blocked.
func NewCSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csp <header-value>",
		Short: "Check whether a Content-Security-Policy value blocks scripting",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if bridge.SandboxBlocksScripts(args[0]) {
				fmt.Println(styles.Warning.Render("scripting blocked") +
					styles.Subtle.Render("  (sandbox directive without allow-scripts)"))
				return
			}
			fmt.Println(styles.Success.Render("scripting allowed"))
		},
	}
}
