package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile   string
	colorMode string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "utf8span",
	Short: "Validate and inspect UTF-8 text",
	Long: `utf8span checks that files hold well-formed UTF-8, reports every ill-formed
subsequence with its exact byte range, and inspects valid text by scalars,
grapheme clusters and Unicode canonical equivalence.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.utf8span/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("format", formatHuman, "Output format for stats and compare: human, json, yaml")

	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and UTF8SPAN_* environment variables.
// Flags given on the command line take precedence over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".utf8span"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("utf8span")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
		}
	}

	colorMode = viper.GetString("color")
	verbose = viper.GetBool("verbose")
	if f := viper.ConfigFileUsed(); f != "" {
		debugf(rootCmd, "using config file %s", f)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// debugf writes a diagnostic line to stderr when --verbose is set.
func debugf(cmd *cobra.Command, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// styles holds the color formatters for human-readable output.
type styles struct {
	enabled bool
	ok      *color.Color
	bad     *color.Color
	path    *color.Color
	heading *color.Color
}

// newStyles creates color formatters. With enabled=false every formatter
// prints plain text.
func newStyles(enabled bool) *styles {
	s := &styles{
		enabled: enabled,
		ok:      color.New(color.FgHiGreen),
		bad:     color.New(color.Bold, color.FgHiRed),
		path:    color.New(color.Bold),
		heading: color.New(color.Bold, color.FgHiBlue),
	}
	for _, c := range []*color.Color{s.ok, s.bad, s.path, s.heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// stylesFor resolves --color against the output writer: "auto" enables
// colors only on a terminal (including Cygwin and MSYS ones) with NO_COLOR
// unset.
func stylesFor(out io.Writer) *styles {
	switch colorMode {
	case "always":
		return newStyles(true)
	case "never":
		return newStyles(false)
	default:
		f, ok := out.(*os.File)
		enabled := ok && (term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("NO_COLOR") == ""
		return newStyles(enabled)
	}
}
