package main

import (
	"fmt"
	"os"

	"github.com/dalia-sh/dalia/internal/adapters/configparsing"
	"github.com/dalia-sh/dalia/internal/adapters/dirlisting"
	"github.com/dalia-sh/dalia/internal/adapters/predefinedaliases"
	"github.com/dalia-sh/dalia/internal/core/ports"
	"github.com/dalia-sh/dalia/internal/core/services/aliasgeneration"
	"github.com/dalia-sh/dalia/internal/handlers/cli"
	"github.com/dalia-sh/dalia/internal/repositories/configfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	configSource, err := configfile.NewConfigSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing configuration source: %v\n", err)
		os.Exit(1)
	}

	parser := configparsing.NewParser(dirlisting.NewOSDirectoryLister())

	// predefinedAliasProvider can be nil if it cannot be constructed
	var predefinedAliasProvider ports.PredefinedAliasProvider
	yamlPath, err := configfile.PredefinedAliasesPath()
	if err == nil {
		predefinedAliasProvider, err = predefinedaliases.NewYAMLProvider(yamlPath)
	}
	if err != nil {
		// The service will handle a nil predefinedAliasProvider.
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize predefined alias provider: %v. Continuing without predefined aliases.\n", err)
		predefinedAliasProvider = nil
	}

	generationSvc := aliasgeneration.NewService(configSource, parser, predefinedAliasProvider)
	rootCmd := cli.NewRootCommand(Version, generationSvc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
