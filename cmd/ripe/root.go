package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kochabx/ripe/config"
	"github.com/kochabx/ripe/log"
)

// cliConfig is the optional file configuration of the tool. Flags always win;
// the file only supplies defaults.
type cliConfig struct {
	RSABits int `mapstructure:"rsa_bits" validate:"omitempty,gte=512"`
	Log     struct {
		Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	} `mapstructure:"log"`
}

var (
	cfg        cliConfig
	configName string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ripe",
	Short: "Encrypted envelope toolkit (AES-CBC packets, RSA, zlib)",
	Long: `ripe builds and opens framed encrypted packets of the form

  <32-hex IV>:[<client id>:]<base64 AES-CBC ciphertext>\r\n\r\n

and provides the surrounding RSA key-pair, signature and compression
operations.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init()
		loadConfig()
		if verbose {
			log.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	for _, command := range rootCmd.Commands() {
		setFlagsFromEnv("RIPE_", command.Flags())
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setFlagsFromEnv fills unset flags from RIPE_<FLAG> environment variables.
func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the command line
		if set[f.Name] {
			return
		}
		name := prefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")
		if e, ok := os.LookupEnv(name); ok {
			_ = f.Value.Set(e)
		}
	})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configName, "config", "ripe.yaml", "config file name, searched in the working directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig reads the optional config file. A missing file is fine; a broken
// one is reported and ignored.
func loadConfig() {
	c := config.New(&cfg, config.WithFile(configName, "."), config.WithWatch(false))
	if err := c.Load(); err != nil {
		log.Debug().Err(err).Msg("no usable config file, using defaults")
		return
	}

	switch cfg.Log.Level {
	case "debug":
		log.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		log.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		log.SetGlobalLevel(zerolog.ErrorLevel)
	}
}

// readInput returns the first positional argument, the --in file, or stdin.
func readInput(args []string, inFile string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	if inFile != "" {
		return os.ReadFile(inFile)
	}
	return io.ReadAll(os.Stdin)
}

// writeOutput writes data to the --out file, or stdout when none is set.
func writeOutput(data []byte, outFile string) error {
	if outFile != "" {
		return os.WriteFile(outFile, data, 0o644)
	}
	_, err := os.Stdout.Write(data)
	return err
}
