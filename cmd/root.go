package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/runstore"
	"github.com/JesusPetro/mantra/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Stamped by the release pipeline through -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the context every command runs under.
var rootCtx = context.Background()

// cfg is the validated configuration shared by all commands.
var cfg = &contract.Config{}

// input collects the raw values viper resolved from file, env and flags
// before validation.
var input = &contract.ConfigRawInput{}

// profile holds profiling configuration.
var profile = &contract.ProfileConfig{}

// startProfiling begins a CPU profile when --profile is set. The heap
// profile is written when the command finishes.
func startProfiling() error {
	if !profile.Enabled {
		return nil
	}

	cpuFile, err := os.Create(profile.Prefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}

	_, err = fmt.Fprintf(os.Stdout, "Profiling enabled. CPU profile: %s.cpu.prof, Memory profile: %s.mem.prof\n", profile.Prefix, profile.Prefix)
	return err
}

// stopProfiling flushes the CPU profile and captures the heap profile.
func stopProfiling() error {
	if !profile.Enabled {
		return nil
	}

	pprof.StopCPUProfile()

	memFile, err := os.Create(profile.Prefix + ".mem.prof")
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}

	_, err = fmt.Fprintf(os.Stdout, "Profiling complete. Use 'go tool pprof %s.cpu.prof' to analyze.\n", profile.Prefix)
	return err
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "mantra",
	Short:              "Estimate power-law exponents of light-curve visibility graphs.",
	Long:               `Mantra turns astronomical light curves into visibility graphs and fits the power-law exponent of their degree distributions.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig wires viper to the config file, the MANTRA_* environment
// and the built-in defaults before any command runs.
func initConfig() {
	setConfigSource()

	viper.SetEnvPrefix("MANTRA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("data-dir", "data")
	viper.SetDefault("variant", string(schema.NaturalVariant))
	viper.SetDefault("li-fit", contract.DefaultLiFit)
	viper.SetDefault("ls-fit", contract.DefaultLsFit)
	viper.SetDefault("id-column", contract.DefaultIDColumn)
	viper.SetDefault("mag-column", contract.DefaultMagColumn)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("store-backend", "")
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("color", "yes")
}

// setConfigSource points viper at --config when given, otherwise at
// .mantra.yaml in the working directory or the home directory.
func setConfigSource() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".mantra")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
}

// sharedSetup resolves, validates and applies configuration for the
// analysis commands. It also starts profiling and opens the run store.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	profilePrefix := viper.GetString("profile")
	if err := contract.ProcessProfilingConfig(profile, profilePrefix); err != nil {
		return fmt.Errorf("failed to process profiling config: %w", err)
	}
	if profile.Enabled {
		if err := startProfiling(); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
	}

	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// The transient type is positional; viper only sees flags.
	if len(args) == 1 {
		input.TypeStr = args[0]
	}

	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if err := runstore.InitStore(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	return nil
}

// sharedSetupWrapper adapts sharedSetup to Cobra's PreRunE signature.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile reads the config file if one exists. A missing file is
// not an error; defaults, env and flags still apply.
func loadConfigFile() error {
	setConfigSource()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// StopProfiling stops profiling if enabled.
func StopProfiling() error {
	return stopProfiling()
}
