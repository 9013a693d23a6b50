// Fractalexport renders a fractal without a window and writes it as PNG or
// SVG.
//
//	fractalexport -kind menger -depth 4 -zoom 2 -o carpet.png
//	fractalexport -kind sierpinski -depth 7 -format svg > triangle.svg
//
// A depth outside the kind's range prints the accepted range and exits
// with status 2 without writing anything.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/fractal"
	"github.com/phanxgames/fractal/internal/config"
)

type options struct {
	kind   string
	depth  string
	zoom   int
	width  int
	height int
	format string
	out    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fractalexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	var o options
	fs.StringVar(&o.kind, "kind", "", "fractal kind: sierpinski or menger")
	fs.StringVar(&o.depth, "depth", "", "recursion depth")
	fs.IntVar(&o.zoom, "zoom", 0, "zoom steps; negative zooms out")
	fs.IntVar(&o.width, "width", 0, "image width")
	fs.IntVar(&o.height, "height", 0, "image height")
	fs.StringVar(&o.format, "format", "", "png or svg (default from -o extension, else png)")
	fs.StringVar(&o.out, "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fractal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := export(cfg, o, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		var de *fractal.DepthError
		if errors.As(err, &de) {
			return 2
		}
		return 1
	}
	return 0
}

func export(cfg config.Config, o options, stdout io.Writer) error {
	kind := cfg.Kind
	if o.kind != "" {
		k, err := fractal.ParseKind(o.kind)
		if err != nil {
			return err
		}
		kind = k
	}
	depth := o.depth
	if depth == "" {
		depth = fmt.Sprint(cfg.Depth)
	}
	width, height := cfg.Width, cfg.Height
	if o.width > 0 {
		width = o.width
	}
	if o.height > 0 {
		height = o.height
	}
	format, err := outputFormat(o.format, o.out)
	if err != nil {
		return err
	}

	// Validate before touching the output so a bad depth leaves no file.
	d, ok := fractal.ParseDepth(depth)
	if !ok {
		return &fractal.DepthError{Kind: kind, Input: depth, NotANumber: true}
	}
	if err := fractal.ValidateDepth(kind, d); err != nil {
		return err
	}

	view := fractal.NewView(float64(width), float64(height))
	for i := 0; i < o.zoom; i++ {
		view.ZoomIn()
	}
	for i := 0; i > o.zoom; i-- {
		view.ZoomOut()
	}

	w := stdout
	var f *os.File
	if o.out != "" {
		f, err = os.Create(o.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		w = f
	}
	bw := bufio.NewWriter(w)

	switch format {
	case "svg":
		s := fractal.NewSVGSurface(bw, width, height)
		s.Title = fmt.Sprintf("%s depth %d", kind, d)
		if err = fractal.NewRenderer(s, view).Draw(kind, d); err == nil {
			err = s.Close()
		}
	default:
		s := fractal.NewRasterSurface(width, height)
		if err = fractal.NewRenderer(s, view).Draw(kind, d); err == nil {
			err = s.WritePNG(bw)
		}
	}
	if err == nil {
		err = bw.Flush()
	}
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	fractal.Logger().Info("exported", "kind", kind, "depth", d, "format", format, "out", o.out)
	return nil
}

// outputFormat picks the format from the flag, falling back to the output
// file extension.
func outputFormat(flagValue, out string) (string, error) {
	f := strings.ToLower(flagValue)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
		if f != "svg" {
			f = "png"
		}
	}
	if f != "png" && f != "svg" {
		return "", fmt.Errorf("unknown format %q: want png or svg", flagValue)
	}
	return f, nil
}
