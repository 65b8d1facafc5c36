package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/chemformula/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse <formula>...",
	Short: "Print the atom counts of each formula",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check <formula>...",
	Short: "Validate formulas without printing counts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parse, err := selectEngine(viper.GetString("engine"))
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, src := range args {
		counts, err := parse(src)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", src)
		}
		klog.V(1).Infof("%s: %d atoms, %d elements", src, counts.Total(), len(counts))

		if len(args) > 1 && format == render.FormatText {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", src)
		}
		if err := render.Write(out, format, counts); err != nil {
			return errors.Wrap(err, "writing counts")
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	parse, err := selectEngine(viper.GetString("engine"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, src := range args {
		if _, err := parse(src); err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", src, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", src)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d formulas invalid", failed, len(args))
	}
	return nil
}
