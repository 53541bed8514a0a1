package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/yammerjp/floatpack/internal/datauri"
	"github.com/yammerjp/floatpack/internal/extract"
	"github.com/yammerjp/floatpack/internal/packer"
)

type CLI struct {
	Numbers  []string `arg:"" optional:"" help:"Numbers (space- and/or comma-separated). If omitted or '-', read from stdin."`
	DType    string   `name:"dtype" help:"Float width." enum:"f32,f64" env:"FLOATPACK_DTYPE" default:"f32"`
	Endian   string   `help:"Byte order." enum:"little,big" env:"FLOATPACK_ENDIAN" default:"little"`
	LogLevel string   `help:"Logging level (debug, info, warn, error)." env:"FLOATPACK_LOG_LEVEL" default:"info"`
	Version  bool     `help:"Show version information."`
}

func setupLogger(levelStr string) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	// stdout carries the URI, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("floatpack"),
		kong.Description("Pack floats from text into a base64 data URI."),
		kong.UsageOnError(),
	)

	setupLogger(cli.LogLevel)

	os.Exit(run(cli, os.Stdin, os.Stdout, os.Stderr))
}

func run(cli CLI, stdin io.Reader, stdout, stderr io.Writer) int {
	if cli.Version {
		printVersion(stdout)
		return 0
	}

	text, err := gatherText(cli.Numbers, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	values := extract.Floats(text)
	if len(values) == 0 {
		fmt.Fprintln(stderr, "No numbers found. Provide floats as args or via stdin.")
		return 1
	}
	slog.Debug("extracted values", "count", len(values), "dtype", cli.DType, "endian", cli.Endian)

	buf, err := packer.Pack(values, packer.Config{
		DType:  packer.DType(cli.DType),
		Endian: packer.Endian(cli.Endian),
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, datauri.Encode(buf))
	return 0
}

// gatherText joins the positional arguments with spaces, or reads all of
// stdin when none were given or the sole argument is "-".
func gatherText(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}
