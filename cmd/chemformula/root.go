package main

import (
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "chemformula",
	Short: "Chemical formula atom counter",
	Long:  "chemformula parses chemical formulas such as Mg2[CH4{NNi2(Li2O4)5}14]3 and reports the number of atoms of each element.",

	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().StringP("engine", "e", engineDescent, "Parser engine: descent or grammar")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("CHEMFORMULA")
	viper.AutomaticEnv()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		if err := klogFlags.Set("v", "2"); err != nil {
			return err
		}
	}
	klog.V(2).Infof("engine=%s format=%s", viper.GetString("engine"), viper.GetString("format"))
	return nil
}
