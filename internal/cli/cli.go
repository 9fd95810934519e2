package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/varforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("varforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
varforge - Resolves installer dynamic variable definitions to a fixed point.

Usage:
  varforge [options] [DEFINITIONS_PATH]

Arguments:
  DEFINITIONS_PATH
    Path to a single .hcl file or a directory containing .hcl files with
    variable and condition blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	defsFlag := flagSet.String("defs", "", "Path to the definitions file or directory.")
	dFlag := flagSet.String("d", "", "Path to the definitions file or directory (shorthand).")
	propertiesFlag := flagSet.String("properties", "", "Path to a YAML file of seed properties.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *defsFlag != "" {
		path = *defsFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		DefinitionsPath: path,
		PropertiesPath:  *propertiesFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
