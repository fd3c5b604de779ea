package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gompdf/ingredientpdf"
	"github.com/gompdf/ingredientpdf/internal/artifact"
	"github.com/gompdf/ingredientpdf/internal/config"
	"github.com/gompdf/ingredientpdf/internal/logging"
	"github.com/gompdf/ingredientpdf/internal/res"
	"github.com/gompdf/ingredientpdf/internal/server"
	"github.com/gompdf/ingredientpdf/pkg/report"
)

func main() {
	var (
		configFile string
		inputFile  string
		outputFile string
		verbose    bool
	)

	flag.StringVar(&configFile, "config", "", "YAML config file path")
	flag.StringVar(&inputFile, "input", "", "Render a request JSON (file, URL, data: URL or - for stdin) instead of serving")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path for -input")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if inputFile != "" {
		if outputFile == "" {
			outputFile = defaultOutput(inputFile, cfg.Render.DownloadName)
		}
		if err := renderFile(cfg, log, inputFile, outputFile); err != nil {
			fmt.Printf("Error rendering %s: %v\n", inputFile, err)
			os.Exit(1)
		}
		if verbose {
			fmt.Printf("Successfully rendered %s to %s\n", inputFile, outputFile)
		}
		return
	}

	if err := serve(cfg, log); err != nil {
		log.Errorf("server error: %v", err)
		os.Exit(1)
	}
}

func newRenderer(cfg config.Config, log logging.Logger) *ingredientpdf.Renderer {
	return ingredientpdf.New().WithOption(
		ingredientpdf.WithScratchDir(cfg.Render.ScratchDir),
		ingredientpdf.WithFilenamePrefix(cfg.Render.FilenamePrefix),
		ingredientpdf.WithRepeatHeader(cfg.Render.RepeatHeader),
		ingredientpdf.WithDebug(cfg.Log.Level == "debug"),
		ingredientpdf.WithLogger(log),
	)
}

func renderFile(cfg config.Config, log logging.Logger, input, output string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	resource, err := res.NewLoader().Load(ctx, input)
	if err != nil {
		return err
	}
	req, err := server.DecodeRequest(resource.Data)
	if err != nil {
		return err
	}
	grid, err := report.NewGrid(ingredientpdf.IngredientHeader, req.Rows())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	art, err := newRenderer(cfg, log).RenderTo(f, grid)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(output)
		return err
	}
	log.Debugf("wrote %s (%d pages, %d bytes)", output, art.Pages, art.Size)
	return nil
}

func serve(cfg config.Config, log logging.Logger) error {
	store := artifact.NewStore(cfg.Render.ScratchDir, cfg.Render.FilenamePrefix)
	if cfg.Render.CleanupOnStart {
		removed, err := store.Sweep(cfg.Render.StaleAfter)
		if err != nil {
			log.Errorf("startup sweep: %v", err)
		}
		if removed > 0 {
			log.Infof("removed %d stale artifacts from %s", removed, cfg.Render.ScratchDir)
		}
	}

	h := server.NewHandler(newRenderer(cfg, log), store, log, cfg.Render.DownloadName)
	app := server.NewApp(server.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowCredentials: cfg.Server.AllowCredentials,
		AccessLog:        os.Stdout,
	}, h)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on http://%s", cfg.Addr())
		errCh <- app.Listen(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Infof("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

// defaultOutput derives the PDF path from a local input file; other
// sources fall back to the download name.
func defaultOutput(input, fallback string) string {
	if input == "-" {
		return fallback
	}
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(input, prefix) {
			return fallback
		}
	}
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + ".pdf"
}
