// Command score scores model output offline and prints the result JSON.
// Text is read from --file, or from stdin when no file is given.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/haiku-judge/internal/haiku"
)

func main() {
	file := flag.String("file", "", "file to score (default stdin)")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	in := io.Reader(os.Stdin)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			logger.Error("open input", slog.String("file", *file), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		logger.Error("read input", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(haiku.Parse(string(raw))); err != nil {
		logger.Error("write result", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
