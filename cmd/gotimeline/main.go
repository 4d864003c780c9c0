package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gotimeline/internal/app"
)

func main() {
	// Logging setup; stdout carries only the status line.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		root       string
		inputPath  string
		outputPath string
		pdfPath    string
		xlsxPath   string
		configPath string
		envFiles   string
		verbose    bool
	)

	flag.StringVar(&root, "root", "", "Directory that default and relative paths resolve against (default: working directory)")
	flag.StringVar(&inputPath, "input", "", "Path to the source presentation (default: History/Timeline.pptx)")
	flag.StringVar(&outputPath, "output", "", "Path to write the JSON record (default: History/timeline_extracted.json)")
	flag.StringVar(&pdfPath, "output.pdf", "", "Optional path to also render the timeline as PDF")
	flag.StringVar(&xlsxPath, "output.xlsx", "", "Optional path to also export the timeline as XLSX")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&envFiles, "env", "", "Comma-separated dotenv files to load before reading env")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Error().Err(err).Msg("load env files")
		os.Exit(1)
	}

	cfg := app.Config{
		Root:           root,
		InputPath:      inputPath,
		OutputPath:     outputPath,
		OutputPDFPath:  pdfPath,
		OutputXLSXPath: xlsxPath,
		Verbose:        verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Str("version", app.BuildVersion).Str("commit", app.BuildCommit).Msg("starting")

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// run executes one conversion and prints the status line to stdout. A missing
// input is reported there as well and is not an error.
func run(ctx context.Context, cfg app.Config, stdout io.Writer) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	summary, err := a.Run(ctx)
	if errors.Is(err, app.ErrSourceNotFound) {
		return app.WriteJSONLine(stdout, app.ErrorStatus{Error: err.Error()})
	}
	if err != nil {
		return err
	}
	return app.WriteJSONLine(stdout, summary.Status())
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
