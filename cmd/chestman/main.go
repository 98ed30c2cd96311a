package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bagend/chestman/internal/config"
	"github.com/bagend/chestman/internal/gui"
	"github.com/bagend/chestman/internal/logger"
	"github.com/bagend/chestman/internal/version"
)

var (
	configPath string
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "chestman",
	Short:   "Manage EnderChest installations and GSB save repos",
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},
	// A bare invocation opens the GUI, matching the desktop launcher habit.
	RunE: func(cmd *cobra.Command, args []string) error {
		gui.Run(windowTitle())
		return nil
	},
}

func windowTitle() string {
	return fmt.Sprintf("chestman %s", version.Version)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(),
		"path to the chestman config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
