// Command mikser mixes nouns from a donor text into a recipient text from
// the command line. The recipient is read from a file argument or stdin;
// the result is written to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nounmixer-pl/mikser"
)

var (
	donorPath   string
	lexiconPath string
	strength    float64
	safe        bool
)

var rootCmd = &cobra.Command{
	Use:   "mikser [recipient-file]",
	Short: "Replace nouns in a Polish text with inflected nouns from a donor text",
	Long: `mikser rewrites a recipient text by replacing its nouns with nouns
harvested from a donor text, inflected into each replaced word's own
grammatical slot. The same inputs always produce the same output.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var recipient []byte
		var err error
		if len(args) == 1 {
			recipient, err = os.ReadFile(args[0])
		} else {
			recipient, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read recipient: %w", err)
		}

		donor, err := os.ReadFile(donorPath)
		if err != nil {
			return fmt.Errorf("read donor: %w", err)
		}

		lex, err := mikser.NewLexicon(lexiconPath)
		if err != nil {
			return err
		}
		m := mikser.NewMixer(lex)

		var result string
		if safe {
			result = m.MixSafe(string(recipient), string(donor), strength)
		} else {
			result = m.Mix(string(recipient), string(donor), strength)
		}
		// no trailing newline: the recipient's own whitespace is preserved
		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&donorPath, "donor", "d", "", "file with the donor text (required)")
	_ = rootCmd.MarkFlagRequired("donor")
	rootCmd.Flags().StringVarP(&lexiconPath, "lexicon", "l", "data/lexicon.tsv", "path to the lexicon file")
	rootCmd.Flags().Float64VarP(&strength, "strength", "s", 1.0, "fraction of nouns to replace, 0..1")
	rootCmd.Flags().BoolVar(&safe, "safe", false, "only replace nominative nouns outside risky contexts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
