package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scriptjob/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [job files...]",
		Short: "Run the specified jobs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			runtimeArgs, _ := cmd.Flags().GetStringToString("arg")
			parallel, _ := cmd.Flags().GetInt("parallel")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Args:     runtimeArgs,
				Parallel: parallel,
			})
		},
	}
	cmd.Flags().StringToStringP("arg", "a", nil, "Runtime argument passed to the jobs (key=value, repeatable)")
	cmd.Flags().IntP("parallel", "p", 1, "How many jobs to run at once")
	return cmd
}
