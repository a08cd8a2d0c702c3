package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/config"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/viewer"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("asciify", flag.ContinueOnError)
	inputFile := fs.String("input", "",
		"Path to the input image file (required)")
	outputFile := fs.String("output", "",
		"Path to save the text (if not specified, prints to stdout)")
	tileWidth := fs.Int("width", 0,
		"Tile width in pixels (default from config, 10)")
	tileHeight := fs.Int("height", 0,
		"Tile height in pixels (default from config, 10)")
	fontSize := fs.Int("fontsize", 0,
		"Font size in pixels (default from config, 12)")
	channel := fs.String("channel", "",
		"Grayscale channel: L, R, G or B (default from config, L)")
	charset := fs.String("charset", "",
		"Characters to match against, earlier ones win ties")
	fontPath := fs.String("font", "",
		"TTF file or font name to search for (default: embedded Go Regular)")
	interp := fs.String("resize", "bicubic",
		"Resize filter: bicubic, bilinear, nearest, or approx")
	nocache := fs.Bool("nocache", false,
		"Render every glyph for every tile instead of memoising")
	view := fs.Bool("view", false,
		"Show the result in a scrollable viewer with save and copy keys")
	envFile := fs.String("env", "",
		"Read defaults from this .env file instead of .env.local and .env")
	verbose := fs.Bool("v", false,
		"Log debug output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	envFiles := config.DefaultEnvFiles
	if *envFile != "" {
		envFiles = []string{*envFile}
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		fs.PrintDefaults()
		return 2
	}

	// Flags override config only when given.
	p := cfg.Params
	p.ImagePath = *inputFile
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["width"] {
		p.TileWidth = *tileWidth
	}
	if set["height"] {
		p.TileHeight = *tileHeight
	}
	if set["fontsize"] {
		p.FontSize = *fontSize
	}
	if set["charset"] {
		p.CharacterSet = *charset
	}
	if set["font"] {
		p.FontPath = *fontPath
	}
	if set["channel"] {
		ch, err := img2ascii.ParseChannel(*channel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		p.Channel = ch
	}

	resize, ok := imageutil.ParseInterpolation(strings.ToLower(*interp))
	if !ok {
		fmt.Fprintln(os.Stderr, "Invalid resize filter, options are bicubic, bilinear, nearest, or approx")
		return 2
	}

	conv := img2ascii.NewConverter(
		img2ascii.WithLogger(logger),
		img2ascii.WithGlyphCache(!*nocache),
		img2ascii.WithInterpolation(resize),
	)

	if *view {
		var opts []viewer.Option
		if *outputFile != "" {
			opts = append(opts, viewer.WithSavePath(*outputFile))
		}
		final, err := viewer.Run(viewer.New(conv, p, opts...))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			return 1
		}
		if final.Err() != nil {
			return report(final.Err())
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	grid, err := conv.Convert(ctx, p)
	if err != nil {
		return report(err)
	}

	if *outputFile == "" {
		fmt.Print(grid.String())
		return 0
	}
	if err := grid.Save(*outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
		return 1
	}
	logger.Info("output written", "path", *outputFile, "cols", grid.Cols(), "rows", grid.Len())
	return 0
}

// report prints a conversion error and picks the exit status: 2 for bad
// parameters, 1 for everything else.
func report(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var ce *img2ascii.ConfigError
	if errors.As(err, &ce) {
		return 2
	}
	return 1
}
