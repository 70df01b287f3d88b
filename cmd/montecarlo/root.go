package main

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kirill77/montecarlo/sobol"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Sobol sequences for quasi-Monte Carlo estimation.",
	Long: `Sobol sequences for quasi-Monte Carlo estimation.
Every flag can also be set in a config file or through a MONTECARLO_* environment
variable, for example:
  montecarlo points --count 1024 --dims 3 --output points.csv
  MONTECARLO_MODE=direct montecarlo spheretest --seed 7`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.montecarlo.yaml)")
	flags.String("mode", "incremental", "sequence update strategy: incremental or direct")
	flags.BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlags(flags)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".montecarlo")
	}

	viper.SetEnvPrefix("MONTECARLO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags exposes a command's local flags through viper.
func bindFlags(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
}

func configuredMode() (sobol.Mode, error) {
	return sobol.ParseMode(viper.GetString("mode"))
}
