package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "velo",
		Short:         "velo: evaluate cash-load attempts against velocity limits",
		Long:          "velo reads a file of cash-load attempt records, evaluates each against per-customer velocity limits (daily amount, weekly amount, daily attempt count), and writes an accept/reject decision per attempt.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()

	rootCmd.AddCommand(
		newVersionCmd(),
		newProcessCmd(app),
	)

	return rootCmd
}
