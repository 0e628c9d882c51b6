package main

import (
	"flag"
	"os"

	"github.com/brettbedarf/imfs"
	"github.com/brettbedarf/imfs/config"
	"github.com/brettbedarf/imfs/internal/util"
	"github.com/brettbedarf/imfs/shell"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		seedPath   string
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&seedPath, "seed", "", "Path to a YAML or JSON file listing nodes to create at startup")
	flag.StringVar(&seedPath, "s", "", "--seed (shorthand)")
	flag.IntVar(&verbose, "verbose", 0, "Log verbosity level between 1 (error) and 5 (trace). Overrides the config file. Default is 3 (info).")
	flag.IntVar(&verbose, "v", 0, "--verbose (shorthand)")
	flag.Parse()

	override := &config.ConfigOverride{}
	if configPath != "" {
		fileOverride, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			util.InitializeLogger(util.ErrorLevel)
			logger := util.GetLogger("main")
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		override = fileOverride
	}
	if verbose != 0 {
		override.LogLvl = &verbose
	}
	cfg := config.NewConfig(override)

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	ns := imfs.New(cfg)
	logger.Debug().Str("id", ns.ID().String()).Str("config", configPath).Str("seed", seedPath).Msg("Namespace created")

	if seedPath != "" {
		entries, err := imfs.LoadSeedFile(seedPath)
		if err != nil {
			logger.Fatal().Err(err).Str("seed", seedPath).Msg("Failed to load seed file")
		}
		imfs.ApplySeed(ns, entries)
	}

	sh := shell.New(ns, cfg)
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Shell terminated")
	}
}
