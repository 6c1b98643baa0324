// Command boxdemo renders a YAML scene of styled boxes to a BMP or PNG
// file.
//
//	boxdemo -scene card.yaml -out card.bmp -parallel 4 -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "boxdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("boxdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "scene YAML file (required)")
		output    = fs.String("out", "out.bmp", "output file, .bmp or .png")
		workers   = fs.Int("parallel", 0, "worker goroutines, 0 for GOMAXPROCS")
		tileSize  = fs.Int("tile", scene.DefaultTileSize, "tile size in pixels")
		logLevel  = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat = fs.String("log-format", "text", "log format: text or json")
		logFile   = fs.String("log-file", "", "also log JSON to this rotated file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		fs.Usage()
		return errors.New("missing -scene")
	}

	logger, closer := newLogger(stderr, logOptions{Level: *logLevel, Format: *logFormat, File: *logFile})
	defer closer.Close()
	canvas.SetLogger(logger)
	defer canvas.SetLogger(nil)

	s, err := scene.Load(*scenePath)
	if err != nil {
		return err
	}
	r := scene.NewRenderer(s.Width, s.Height, scene.WithWorkers(*workers), scene.WithTileSize(*tileSize))
	defer r.Close()

	frame, err := r.NewFrame()
	if err != nil {
		return err
	}
	if err := r.Render(ctx, frame, s); err != nil {
		return fmt.Errorf("render %s: %w", *scenePath, err)
	}
	if err := save(*output, frame.View()); err != nil {
		return err
	}

	st := r.Stats()
	logger.Info("rendered",
		slog.String("scene", *scenePath),
		slog.String("out", *output),
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("boxes", st.Boxes),
		slog.Int("tiles", st.TilesRendered),
		slog.Duration("took", st.TimeTotal),
	)
	return nil
}

// save encodes img by the extension of path.
func save(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		encode = bmp.Encode
	case ".png":
		encode = png.Encode
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
