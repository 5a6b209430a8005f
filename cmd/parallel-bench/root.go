package main

import (
	"io"

	"github.com/spf13/cobra"
)

const (
	CmdRun = "run"
	CmdOps = "ops"
)

// newRootCmd builds the command tree. Output goes to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "parallel-bench",
		Short: "Compare serial and parallel bulk operations",
		Long: `parallel-bench times every bulk operation of the parallel package against
its serial equivalent on generated integers and words, and checks that both
produce the same result.

Examples:
  parallel-bench run --size 1000000 --runs 10
  parallel-bench run --op select,groupBy --config engine.yaml
  parallel-bench run --metrics :9090`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newRunCmd(), newOpsCmd())

	return root
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   CmdOps,
		Short: "List the benchmarked operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range caseNames() {
				cmd.Println(name)
			}

			return nil
		},
	}
}
