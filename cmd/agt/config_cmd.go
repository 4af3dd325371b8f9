package main

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/config"
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configLsCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
}

var configLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		values, err := config.List()
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(values)
			return
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			out.Printf("%s = %s\n", k, values[k])
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		value, err := config.Get(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		out.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		if err := config.Set(args[0], args[1]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("%s = %s\n", args[0], args[1])
		}
	},
}
