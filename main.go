// Command xliffkit keeps XLIFF translation catalogs in sync with NodeType definitions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minios-linux/xliffkit/i18n"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logOutput receives all log lines. color.Error strips escape codes when
// stderr is not a terminal or NO_COLOR is set.
var logOutput io.Writer = color.Error

var (
	infoPrefix    = color.New(color.FgBlue).Sprint("[INFO]")
	successPrefix = color.New(color.FgGreen).Sprint("[OK]")
	warningPrefix = color.New(color.FgYellow, color.Bold).Sprint("[WARN]")
	errorPrefix   = color.New(color.FgRed).Sprint("[ERROR]")
)

func logInfo(format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(logOutput, infoPrefix+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(logOutput, successPrefix+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(logOutput, warningPrefix+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(logOutput, errorPrefix+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir    string
	configPath string
	packageDir string
	quiet      bool
	uiLang     string
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "xliffkit",
		Short: "Keep XLIFF translation catalogs in sync with NodeType definitions",
		Long: `xliffkit scans the NodeType YAML files of a package for fields whose value
is the translation magic value (default "i18n") and creates or updates one
XLIFF catalog per NodeType and language.

Existing translations are kept, new entries get a placeholder of the form
"#<locale>/<catalog path>:<id>", and entries no longer used are dropped.

Commands:
  update         Update source and target language catalogs
  update-source  Update source language catalogs only
  scan           List NodeType files and their translation ids
  version        Show version information

Configuration is read from .xliffkit.yaml in the project root, from --config,
and from XLIFFKIT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.Init(uiLang)
		},
	}

	// Global persistent flags, inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: <root>/.xliffkit.yaml)")
	root.PersistentFlags().StringVar(&packageDir, "package-dir", "", "Package directory; skips package lookup below --root")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print warnings and errors")
	root.PersistentFlags().StringVar(&uiLang, "lang", "", "Language of log messages (default: from LANGUAGE, LC_ALL, LC_MESSAGES or LANG)")

	root.AddCommand(
		newUpdateCmd(),
		newUpdateSourceCmd(),
		newScanCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "xliffkit version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}

	return cmd
}
