package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcleary/toctidy/internal/rewrite"
	"github.com/jcleary/toctidy/internal/toc"
)

var (
	outputPath string
	margin     int
	indent     int
	leader     string
	minLeader  int
	backup     bool
)

var formatCmd = &cobra.Command{
	Use:   "format <input>",
	Short: "Format the TOC of a single document",
	Long: `Format rewrites the table of contents and abbreviation definitions of a
.docx or .txt file. The result is written next to the input as
<name>_formatted<ext> unless -o is given; the input is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("input file: %w", err)
		}

		rw, err := rewrite.ForFile(input)
		if err != nil {
			return err
		}

		cfg := toc.DefaultRenderConfig()
		cfg.MarginColumn = margin
		cfg.IndentPerLevel = indent
		cfg.MinLeaderLength = minLeader
		runes := []rune(leader)
		if len(runes) != 1 {
			return fmt.Errorf("--leader must be a single character")
		}
		cfg.LeaderChar = runes[0]
		if err := cfg.Validate(); err != nil {
			return err
		}

		if backup {
			if err := copyFile(input, backupName(input)); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
			printDim(cmd.OutOrStdout(), "backup: "+backupName(input))
		}

		out := outputPath
		if out == "" {
			out = filepath.Join(filepath.Dir(input), rewrite.OutputName(filepath.Base(input)))
		}

		report, err := rw.Rewrite(input, out, cfg)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), out, report)
		return nil
	},
}

func init() {
	formatCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: <input>_formatted)")
	formatCmd.Flags().IntVar(&margin, "margin", 78, "Column where page numbers right-align")
	formatCmd.Flags().IntVar(&indent, "indent", 4, "Indentation columns per nesting level")
	formatCmd.Flags().StringVar(&leader, "leader", ".", "Leader fill character")
	formatCmd.Flags().IntVar(&minLeader, "min-leader", 3, "Minimum leader length")
	formatCmd.Flags().BoolVar(&backup, "backup", false, "Copy the input aside before processing")

	rootCmd.AddCommand(formatCmd)
}

func backupName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_backup" + ext
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
