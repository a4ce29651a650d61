package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCommand constructs the command tree of the poly tool.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "poly",
		Short: "Univariate polynomial arithmetic.",
		Long: `Perform arithmetic, long division and GCD computations on
univariate polynomials. Polynomials are given as comma separated
coefficient lists, constant term first, so "1,0,2" is 2x^2 + 1.
Arguments starting with a minus sign must follow "--".`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
				// Colours only on a terminal.
				log.SetFormatter(&log.TextFormatter{
					DisableColors: !term.IsTerminal(int(os.Stderr.Fd())),
				})
			}
		},
	}
	rootCmd.PersistentFlags().Bool("int", false, "use int64 coefficients (division truncates)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the steps of division and GCD")

	for _, op := range binaryOps {
		rootCmd.AddCommand(newBinaryCommand(op))
	}
	rootCmd.AddCommand(newEvalCommand())

	return rootCmd
}

// Execute runs the poly tool with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// GetFlag gets an expected boolean flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}
