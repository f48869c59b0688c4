// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfbridge CLI.
// Implements: prd001-conversion, prd002-page-selection, prd003-inspection,
//             prd004-upload-api, prd005-cli-shell (CLI surface).
// See docs/ARCHITECTURE § CLI Shell, § Project Structure.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/internal/engine"
	"github.com/pdiddy/pdfbridge/internal/inspect"
	"github.com/pdiddy/pdfbridge/internal/interactive"
	"github.com/pdiddy/pdfbridge/internal/logging"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
	"github.com/pdiddy/pdfbridge/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfbridge CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfbridge [file-or-directory] [output]",
	Short: "Convert PDF documents to DOCX",
	Long: `pdfbridge converts PDF documents to DOCX through the external pdf2docx
tool: one file at a time, a directory at a time, or over HTTP.

Called without arguments it starts an interactive menu. Positional
arguments keep the legacy script dispatch: a PDF path converts one
file, a directory path (or a trailing "batch" word) converts a
directory. The serve, convert, batch, info, and config subcommands are
the structured surface for the same operations.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// runRoot dispatches on positional arguments the way the legacy
// conversion script did, so existing invocations keep working.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, log)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		insp, err := inspect.New()
		if err != nil {
			return err
		}
		defer insp.Close()

		interactive.New(conv, insp, os.Stdin, os.Stdout).Run()
		return nil
	}

	return legacyDispatch(conv, cfg.Convert.Pattern, args, os.Stdin, os.Stdout)
}

// legacyDispatch handles positional-argument invocations. Conversion
// failures are reported on the terminal and absorbed, so the process
// exits 0 whether or not the files converted; only a usage error makes
// the command fail.
func legacyDispatch(conv *convert.Converter, pattern string, args []string, in io.Reader, out io.Writer) error {
	// A trailing "batch" word forces batch mode; a missing input
	// directory is then reported by the batch instead of being treated
	// as a single file.
	forceBatch := false
	if strings.EqualFold(args[len(args)-1], "batch") {
		forceBatch = true
		args = args[:len(args)-1]
		if len(args) == 0 {
			return fmt.Errorf("batch mode needs an input directory")
		}
	}

	isDir := false
	if fi, err := os.Stat(args[0]); err == nil && fi.IsDir() {
		isDir = true
	}
	if forceBatch || isDir {
		outputDir := ""
		if len(args) > 1 {
			outputDir = args[1]
		}
		conv.BatchDir(args[0], outputDir, pattern, interactive.Decider(in, out), out)
		return nil
	}

	src := args[0]
	dst := ""
	if len(args) > 1 {
		dst = args[1]
	}
	if dst == "" {
		dst = docxSibling(src)
	}
	if !conv.ConvertFile(src, dst, pagerange.Range{}) {
		fmt.Fprintf(out, "conversion failed: %s\n", src)
		return nil
	}
	fmt.Fprintf(out, "converted: %s\n", dst)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfbridge.yaml or ~/.config/pdfbridge/pdfbridge.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfbridge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfbridge"))
		}
	}

	viper.SetEnvPrefix("PDFBRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("server.host", defaults.Server.Host)
	viper.SetDefault("server.port", defaults.Server.Port)
	viper.SetDefault("server.max_upload_mb", defaults.Server.MaxUploadMB)
	viper.SetDefault("engine.backend", string(defaults.Engine.Backend))
	viper.SetDefault("engine.binary", defaults.Engine.Binary)
	viper.SetDefault("engine.image", defaults.Engine.Image)
	viper.SetDefault("convert.workers", defaults.Convert.Workers)
	viper.SetDefault("convert.pattern", defaults.Convert.Pattern)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- shared helpers ---

// loadConfig assembles the effective configuration from viper, which at
// this point has merged defaults, the config file, and PDFBRIDGE_* env
// vars.
func loadConfig() types.Config {
	return types.Config{
		Server: types.ServerConfig{
			Host:        viper.GetString("server.host"),
			Port:        viper.GetInt("server.port"),
			MaxUploadMB: viper.GetInt64("server.max_upload_mb"),
		},
		Engine: types.EngineConfig{
			Backend: types.EngineBackend(viper.GetString("engine.backend")),
			Binary:  viper.GetString("engine.binary"),
			Image:   viper.GetString("engine.image"),
		},
		Convert: types.ConvertConfig{
			Workers: viper.GetInt("convert.workers"),
			Pattern: viper.GetString("convert.pattern"),
		},
		Logging: types.LoggingConfig{
			File:  viper.GetString("logging.file"),
			Level: viper.GetString("logging.level"),
		},
	}
}

// newConverter builds the configured engine, verifies the external tool
// is actually reachable, and wraps it in a Converter. Commands that
// convert call this before accepting any work.
func newConverter(cfg types.Config, log *logrus.Logger) (*convert.Converter, error) {
	eng, err := engine.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	if err := eng.Check(); err != nil {
		return nil, err
	}
	log.Debugf("conversion engine: %s", eng.Name())
	return convert.New(eng, log), nil
}

// docxSibling derives the default output path: the source path with its
// extension replaced by .docx.
func docxSibling(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
