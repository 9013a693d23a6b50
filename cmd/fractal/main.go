// Fractal opens a window showing a Sierpinski triangle or Menger carpet.
// Type a depth and press Enter to draw, Tab to switch kinds, +/- to zoom.
//
//	fractal [-config fractal.yaml] [-script steps.json]
//
// With -script the window is driven by a JSON test script and closes when
// the script has finished.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/phanxgames/fractal"
	"github.com/phanxgames/fractal/internal/config"
	"github.com/phanxgames/fractal/viewer"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scriptPath := flag.String("script", "", "JSON test script to run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	fractal.SetLogger(log)

	run := viewer.RunConfig{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Kind:          cfg.Kind,
		Depth:         cfg.Depth,
		ZoomDuration:  cfg.ZoomDuration,
		ShowHUD:       cfg.ShowHUD,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Error("read script", "err", err)
			os.Exit(1)
		}
		runner, err := viewer.LoadTestScript(data)
		if err != nil {
			log.Error("load script", "path", *scriptPath, "err", err)
			os.Exit(1)
		}
		run.Script = runner
		run.ExitWhenScriptDone = true
	}

	if err := viewer.Run(run); err != nil {
		log.Error("viewer", "err", err)
		os.Exit(1)
	}
}
