package main

import (
	"encoding/json"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	log     = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "subnetcalc",
	Short: "IPv4/IPv6 subnetting calculator",
	Long: `subnetcalc computes VLSM allocations, borrowed-bit subnet sweeps,
usable host ranges and IPv6 subnet derivations for addressing exercises.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.subnetcalc.yaml)")
	flags.BoolP("debug", "D", false, "Enable debug messages")
	flags.StringP("output", "o", "table", "Output format (table or json)")
	viper.BindPFlags(flags)
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("subnetcalc")
	viper.SetConfigName(".subnetcalc")
	viper.AddConfigPath("$HOME")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("Using config file")
	}

	if viper.GetBool("debug") {
		log.Level = logrus.DebugLevel
	} else {
		log.Level = logrus.InfoLevel
	}
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Unable to marshal output")
	}
	os.Stdout.Write(append(out, '\n'))
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 5, 0, 3, ' ', 0)
}
