package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easel-ai/easel/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "Easel is an AI-driven animation authoring engine",
	Long: `Easel lets an agent build layered, keyframed animation projects through
structured mutation operations, interactively in a chat session or over
HTTP and MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the easel config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging")
}

// loadSetup resolves config and logger for a command invocation.
func loadSetup(cmd *cobra.Command) (cli.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(path)
	if err != nil {
		return cli.Config{}, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	return cfg, nil
}
