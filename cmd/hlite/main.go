// Command hlite highlights query matches in a text file or stdin, printing
// the best-matching fragments as a search-result style preview.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	highlight "go.gopad.dev/go-search-highlight"
)

var (
	flagTerms        []string
	flagMaxFragments int
	flagFragmentSize uint
	flagSeparator    string
	flagHTML         bool
	flagJoin         bool
	flagConfig       string
)

var rootCmd = &cobra.Command{
	Use:   "hlite [file]",
	Short: "Highlight query matches in text",
	Long: `hlite reads a document from a file or stdin, scores its tokens against the
given query terms and prints the best-matching fragments with the matches
highlighted, the way a search engine renders result previews.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(flagTerms) == 0 {
			return fmt.Errorf("at least one --term is required")
		}

		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(cmd, &cfg)

		text, err := readInput(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		h := highlight.New(highlight.NewTermScorer(flagTerms...).FoldCase())
		h.Fragmenter = highlight.NewSimpleFragmenter(cfg.FragmentSize)
		if flagHTML {
			h.Formatter = highlight.NewSimpleHTMLFormatter(cfg.PreTag, cfg.PostTag)
			h.Encoder = highlight.HTMLEncoder{}
		} else {
			h.Formatter = ansiFormatter(cfg.MatchColor)
		}

		tokens := tokenizeWords(text)

		if flagJoin {
			preview, err := h.BestFragmentsJoined(tokens, text, cfg.MaxFragments, cfg.Separator)
			if err != nil {
				return err
			}
			fmt.Println(preview)
			return nil
		}

		frags, err := h.BestFragments(tokens, text, cfg.MaxFragments)
		if err != nil {
			return err
		}
		if len(frags) == 0 {
			fmt.Fprintln(os.Stderr, "no fragments")
			return nil
		}
		for _, frag := range frags {
			fmt.Println(frag)
		}
		return nil
	},
}

// ansiFormatter styles matched spans for terminal output.
func ansiFormatter(color string) highlight.Formatter {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	return highlight.FormatterFunc(func(text string) string {
		return style.Render(text)
	})
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

// applyFlags lets explicitly-set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config) {
	if cmd.Flags().Changed("max-fragments") {
		cfg.MaxFragments = flagMaxFragments
	}
	if cmd.Flags().Changed("fragment-size") {
		cfg.FragmentSize = flagFragmentSize
	}
	if cmd.Flags().Changed("separator") {
		cfg.Separator = flagSeparator
	}
}

func init() {
	rootCmd.Flags().StringArrayVarP(&flagTerms, "term", "t", nil, "Query term to highlight (repeatable)")
	rootCmd.Flags().IntVarP(&flagMaxFragments, "max-fragments", "n", 3, "Maximum number of fragments")
	rootCmd.Flags().UintVar(&flagFragmentSize, "fragment-size", highlight.DefaultFragmentSize, "Target fragment size in bytes")
	rootCmd.Flags().StringVar(&flagSeparator, "separator", highlight.DefaultSeparator, "Separator between non-adjacent fragments")
	rootCmd.Flags().BoolVar(&flagHTML, "html", false, "Emit HTML markup instead of ANSI styling")
	rootCmd.Flags().BoolVar(&flagJoin, "join", false, "Print one joined preview instead of one fragment per line")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
