package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aferraro/badge-scanner/constants"
	"github.com/aferraro/badge-scanner/internal/badge"
	"github.com/aferraro/badge-scanner/internal/ocr"
)

// runscan classifies one badge's OCR text from a file (or stdin with "-")
// and prints the candidate set and auto-selection as JSON. It needs no
// database; useful for tuning the heuristics against captured badge text.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runscan <text-file|->")
		os.Exit(2)
	}

	var raw []byte
	var err error
	if os.Args[1] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(os.Args[1])
	}
	if err != nil {
		logger.Error("read input", "arg", os.Args[1], "error", err)
		os.Exit(1)
	}

	start := time.Now()
	classifier := badge.NewClassifier()
	cs := classifier.Classify(ocr.Normalize(string(raw)))
	sel := badge.Select(cs, badge.DefaultThresholds())
	dur := time.Since(start)

	values := make(map[constants.FieldCategory]string, len(sel))
	for cat, cand := range sel {
		values[cat] = cand.Line.Text
	}
	contact := badge.Sanitize(values, logger)

	out := struct {
		Candidates *badge.CandidateSet    `json:"candidates"`
		Selection  badge.Selection        `json:"selection"`
		Contact    badge.ExtractedContact `json:"contact"`
	}{cs, sel, contact}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}

	logger.Info("scan classified",
		"relevant_lines", len(cs.Relevant),
		"filtered_lines", len(cs.Filtered),
		"selected", len(sel),
		"duration_ms", dur.Milliseconds(),
	)
}
