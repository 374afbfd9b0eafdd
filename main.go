package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
)

func versionString() string {
	return fmt.Sprintf("genicons %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("genicons %s-%s (built %s)\n", Version, CommitHash, BuildTimestamp)
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	showVersion := flag.Bool("version", false, "show version and exit")
	configFile := flag.String("config", "", "path to a JSON config file")
	outputDir := flag.String("out", "", "icon output directory (env: GENICONS_OUTPUT_DIR)")
	iconutilPath := flag.String("iconutil", "", "icns compiler binary (env: GENICONS_ICONUTIL)")
	fallback := flag.Bool("icns-fallback", true, "encode icon.icns natively when the compiler fails (env: GENICONS_ICNS_FALLBACK)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (env: GENICONS_LOG_LEVEL)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	cfg := loadConfig(*configFile)

	// flag.Bool defaults to true, so only an explicitly set
	// -icns-fallback may override the config.
	var fallbackOverride *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "icns-fallback" {
			fallbackOverride = fallback
		}
	})

	applyOverrides(&cfg, overrides{
		OutputDir:    *outputDir,
		IconutilPath: *iconutilPath,
		ICNSFallback: fallbackOverride,
		LogLevel:     *logLevel,
	})

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}
	logrus.Debug(versionString())

	ctx, stop := signalContext()
	err := run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		logrus.WithError(err).Error("Icon generation failed")
		os.Exit(1)
	}
}

// run generates every icon described by cfg, printing one line per
// artifact to out.
func run(ctx context.Context, cfg Config, out io.Writer) error {
	g := &Generator{
		Dir:      cfg.OutputDir,
		Compiler: iconutil{path: cfg.IconutilPath},
		Out:      out,
	}
	if configICNSFallback(cfg) {
		g.Fallback = nativeICNS{}
	}
	logrus.WithField("dir", cfg.OutputDir).Info("Generating icons")
	return g.Run(ctx)
}

// signalContext returns a context cancelled on interrupt (SIGINT on all
// platforms, SIGTERM on Unix), which kills a running icns compiler.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, append([]os.Signal{os.Interrupt}, extraSignals()...)...)
	go func() {
		select {
		case <-sigCh:
			logrus.Warn("Signal received, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
