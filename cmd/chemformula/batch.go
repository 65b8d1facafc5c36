package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/chemformula/render"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Parse one formula per line from a file or stdin",
	Long:  "Parse one formula per line. Blank lines and lines starting with # are skipped. Reads stdin when the file is omitted or '-'.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Bool("fail-fast", false, "Stop at the first invalid formula")

	_ = viper.BindPFlag("fail_fast", batchCmd.Flags().Lookup("fail-fast"))

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	parse, err := selectEngine(viper.GetString("engine"))
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening formula file")
		}
		defer f.Close()
		in = f
	}

	formulas, err := readFormulas(in)
	if err != nil {
		return err
	}

	results, failed := parseAll(parse, formulas, viper.GetBool("fail_fast"))
	klog.V(1).Infof("batch: %d formulas, %d failed", len(results), failed)

	if err := render.WriteBatch(cmd.OutOrStdout(), format, results); err != nil {
		return errors.Wrap(err, "writing results")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d formulas invalid", failed, len(results))
	}
	return nil
}

// readFormulas returns the non-blank, non-comment lines of r, trimmed.
func readFormulas(r io.Reader) ([]string, error) {
	var formulas []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		formulas = append(formulas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading formulas")
	}
	return formulas, nil
}

// parseAll parses every formula, stopping after the first failure when
// failFast is set. It returns the results and the number of failures.
func parseAll(parse parseFunc, formulas []string, failFast bool) ([]render.Result, int) {
	results := make([]render.Result, 0, len(formulas))
	failed := 0
	for _, src := range formulas {
		counts, err := parse(src)
		results = append(results, render.Result{Formula: src, Counts: counts, Err: err})
		if err != nil {
			failed++
			klog.V(2).Infof("invalid formula %q: %v", src, err)
			if failFast {
				break
			}
		}
	}
	return results, failed
}
