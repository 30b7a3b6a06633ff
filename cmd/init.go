package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/internal/engine"
	"github.com/gnolang/lintpipe/lint"
)

// initCmd: lintpipe init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = defaultConfigFile
		}
		if err := initConfigurationFile(path); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

// initConfigurationFile writes the scaffold configuration, replacing
// whatever was at path before.
func initConfigurationFile(path string) error {
	config := engine.DefaultConfig()
	config.Name = "lintpipe"
	return lint.WriteConfig(path, config)
}
