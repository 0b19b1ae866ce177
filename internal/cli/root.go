package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deepthought/internal/logging"
	"deepthought/internal/oracle"
)

var question string

var rootCmd = &cobra.Command{
	Use:   "deepthought",
	Short: "deepthought – answers to existential questions",
	Long:  "deepthought evaluates an existential question and, when it is deep enough, reveals the answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, err := logging.New(logging.Options{})
		if err != nil {
			return err
		}
		defer lg.Close()
		if err := lg.Glitch(cmd.Context(), logging.DefaultGlitchIntensity,
			fmt.Sprintf("Reflecting on question 🧠: %s", question)); err != nil {
			return err
		}
		answer, err := oracle.MeaningOfLife(question)
		if err != nil {
			lg.ErrorCause(err, "the question was rejected")
			return err
		}
		lg.Success(fmt.Sprintf("The answer is %d", answer))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&question, "question", "q", "What is the meaning of life?", "an existential question")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
