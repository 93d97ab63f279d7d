package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	episodes int
	horizon  int
	saveFile string
	runs     int
	cfgFile  string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "or-gym",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file with an env override mapping")
	// adding the subcommands here
	rootCommand.AddCommand(UnboundedCommand())
	rootCommand.AddCommand(BoundedCommand())
	rootCommand.AddCommand(OnlineCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// envOverrides reads the "env" mapping from the config file, if one
// was given. Keys the environments do not recognize are ignored by the
// override mechanism.
func envOverrides() (map[string]any, error) {
	if cfgFile == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return v.GetStringMap("env"), nil
}
