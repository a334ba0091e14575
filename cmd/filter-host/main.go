// Command filter-host processes an image by running a named filter over its
// pixels. Filters are resolved from a directory of shared library modules
// first and from the compiled-in builtin set second.
//
// Usage:
//
//	filter-host --input in.png --output out.png --filter blur \
//	    --params '{"radius": 2, "iterations": 3}' [--filter-path ./filters]
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/filterforge/filter-host/internal/codec"
	"github.com/filterforge/filter-host/internal/filter"
	_ "github.com/filterforge/filter-host/internal/filter/builtin"
	"github.com/filterforge/filter-host/internal/loader"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// hostConfig carries one processing run's settings, merged from flags and
// FILTER_HOST_* environment variables.
type hostConfig struct {
	Input      string
	Output     string
	Filter     string
	Params     string
	ParamsFile string
	FilterPath string
}

func main() {
	flags := pflag.NewFlagSet("filter-host", pflag.ExitOnError)
	flags.String("input", "", "path to the input image")
	flags.String("output", "", "path to save the processed image")
	flags.String("filter", "", "filter name, e.g. blur (builtin: "+strings.Join(filter.Names(), ", ")+")")
	flags.String("params", "{}", "inline JSON parameters for the filter")
	flags.String("params-file", "", "path to a JSON file with filter parameters (overrides --params)")
	flags.String("filter-path", "./filters", "directory containing shared library filter modules")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	showVersion := flags.BoolP("version", "v", false, "print version information")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("filter-host %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	v := viper.New()
	v.SetEnvPrefix("FILTER_HOST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	initLogger(v.GetString("log-level"))

	cfg := hostConfig{
		Input:      v.GetString("input"),
		Output:     v.GetString("output"),
		Filter:     v.GetString("filter"),
		Params:     v.GetString("params"),
		ParamsFile: v.GetString("params-file"),
		FilterPath: v.GetString("filter-path"),
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Error("processing failed")
		os.Exit(1)
	}
}

// initLogger configures the global logger: stderr, text format, level from
// the merged config (stdout stays free for anything piping the tool).
func initLogger(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// run executes one complete processing pass: decode, resolve, invoke, encode.
// Every failure is terminal; nothing is retried.
func run(cfg hostConfig) error {
	if cfg.Input == "" || cfg.Output == "" || cfg.Filter == "" {
		return errors.New("--input, --output and --filter are required")
	}

	params := cfg.Params
	if cfg.ParamsFile != "" {
		data, err := os.ReadFile(cfg.ParamsFile)
		if err != nil {
			return fmt.Errorf("failed to read params file %q: %w", cfg.ParamsFile, err)
		}
		params = string(data)
	}

	log.WithField("path", cfg.Input).Info("loading image")
	buf, err := codec.Open(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"width": buf.Width, "height": buf.Height}).Info("image decoded")

	mod, err := loader.Resolve(cfg.Filter, cfg.FilterPath)
	if err != nil {
		return err
	}
	defer mod.Close()

	if err := mod.Invoke(uint32(buf.Width), uint32(buf.Height), buf.Pix, params); err != nil {
		return err
	}

	log.WithField("path", cfg.Output).Info("saving result")
	if err := codec.Save(buf, cfg.Output); err != nil {
		return err
	}

	log.Info("done")
	return nil
}
