package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rogersnm/labkit/internal/markdown"
	"github.com/rogersnm/labkit/internal/textstats"
	"github.com/spf13/cobra"
)

var textstatsCmd = &cobra.Command{
	Use:   "textstats [file|-]",
	Short: "Count characters and words and list the most common and longest words",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		if err := textstats.CheckLength(text); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		r := textstats.Analyze(textstats.Preprocess(text))
		if r == nil {
			fmt.Fprintln(out, "The text contains no words to analyze.")
			return nil
		}

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			rendered, err := markdown.RenderMarkdown(r.Markdown())
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		}
		fmt.Fprint(out, r.String())
		return nil
	},
}

// readText takes the text from a file, from stdin for "-", or asks for it.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		label := fmt.Sprintf("Enter a text to analyze (at least %d characters)", textstats.MinLength)
		return newPrompter(cmd).Text(label, textstats.CheckLength)
	}
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	textstatsCmd.Flags().Bool("pretty", false, "render with ANSI styling")
	rootCmd.AddCommand(textstatsCmd)
}
