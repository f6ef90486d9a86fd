package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	dotenv "github.com/mutablelogic/go-models/pkg/dotenv"
	logger "github.com/mutablelogic/go-models/pkg/logger"
	google "github.com/mutablelogic/go-models/pkg/provider/google"
	telemetry "github.com/mutablelogic/go-models/pkg/telemetry"
	version "github.com/mutablelogic/go-models/pkg/version"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Globals

	// Commands
	ListModels ListModelsCommand `cmd:"" name:"models" help:"List models." default:"1"`
	GetModel   GetModelCommand   `cmd:"" name:"model" help:"Get model."`
	Version    VersionCommand    `cmd:"" name:"version" help:"Print version information."`
}

type Globals struct {
	// Debugging
	Debug    bool   `name:"debug" help:"Enable debug output"`
	Verbose  bool   `name:"verbose" help:"Enable verbose output"`
	LogLevel string `name:"log-level" env:"LOG_LEVEL" help:"Log level (debug, info, warn, error), overriding --debug and --verbose" optional:""`

	// Gemini
	APIKey   string        `name:"api-key" env:"GEMINI_API_KEY,GOOGLE_API_KEY" help:"Gemini API key"`
	Endpoint string        `name:"endpoint" env:"GEMINI_ENDPOINT" help:"Gemini API endpoint" default:"${endpoint}"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout, or zero for none" default:"0"`

	// OpenTelemetry
	OTelEndpoint string `name:"otel-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OTLP/HTTP trace collector endpoint" optional:""`
	OTelName     string `name:"otel-name" env:"OTEL_SERVICE_NAME" help:"Service name for traces" default:"${name}"`

	// Private
	ctx      context.Context
	execName string
	stdout   io.Writer
	stderr   io.Writer
	provider trace.TracerProvider
	tracer   trace.Tracer
	log      *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func main() {
	// Environment variables from the nearest .env file, without overriding
	if _, err := dotenv.Load(dotenv.Dirs()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli, options(execName())...)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Logging goes to stderr
	level := logger.Level(cli.Debug, cli.Verbose)
	if cli.LogLevel != "" {
		var err error
		level, err = logger.ParseLevel(cli.LogLevel)
		cmd.FatalIfErrorf(err)
	}
	log := logger.New(os.Stderr, level)

	// Tracing
	provider, err := telemetry.New(ctx, cli.OTelName, cli.OTelEndpoint, version.Version())
	if err != nil {
		flush(nil, log)
		cmd.FatalIfErrorf(err)
	}
	defer flush(provider, log)

	// Run the command
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()
	cli.Globals.stdout = os.Stdout
	cli.Globals.stderr = os.Stderr
	cli.Globals.provider = provider.TracerProvider
	cli.Globals.tracer = provider.Tracer()
	cli.Globals.log = log
	if err := cmd.Run(&cli.Globals); err != nil {
		// FatalIfErrorf exits without running deferred calls
		flush(provider, log)
		cmd.FatalIfErrorf(err)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// flush exports pending spans and writes buffered log entries
func flush(provider *telemetry.Provider, log *zap.Logger) {
	if provider != nil {
		provider.Close(context.Background())
	}
	log.Sync()
}

func options(name string) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description("List the models available from the Google Gemini API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"endpoint": google.DefaultEndpoint,
			"name":     name,
		},
	}
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
