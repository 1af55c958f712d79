package cmd

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"supplier-cost/core/search"
	"supplier-cost/internal/config"
	"supplier-cost/internal/errors"
)

func TestBuildOutputMergesConfigAndFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "csv"
	cfg.Output.Directory = "results"

	// Without explicitly set flags the config file governs, even though
	// the flag defaults were captured before the file was loaded.
	format, dir := buildOutput(optimizeCmd, cfg)
	if format != "csv" {
		t.Errorf("format = %s, want config file's csv", format)
	}
	if dir != "results" {
		t.Errorf("dir = %s, want config file's results", dir)
	}

	// An explicitly set flag wins over the config file.
	if err := optimizeCmd.Flags().Set("format", "console"); err != nil {
		t.Fatal(err)
	}
	format, dir = buildOutput(optimizeCmd, cfg)
	if format != "console" {
		t.Errorf("format = %s, want the flag's console", format)
	}
	if dir != "results" {
		t.Errorf("dir = %s, want config file's results", dir)
	}
}

func TestNewSinkKnownFormats(t *testing.T) {
	for _, format := range []string{"console", "csv"} {
		if _, err := newSink(format, t.TempDir()); err != nil {
			t.Errorf("newSink(%q): %v", format, err)
		}
	}
}

func TestNewSinkRejectsUnknownFormat(t *testing.T) {
	_, err := newSink("yaml", ".")
	if err == nil || !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("error = %v, want CONFIG_ERROR", err)
	}
}

func TestInterruptNotice(t *testing.T) {
	if notice := interruptNotice(nil); strings.Contains(notice, "best") {
		t.Errorf("nil result must not claim a best: %q", notice)
	}
	if notice := interruptNotice(&search.Result{}); strings.Contains(notice, "best") {
		t.Errorf("absent result must not claim a best: %q", notice)
	}

	result := &search.Result{
		Found:     true,
		MinCost:   decimal.NewFromFloat(12.5),
		Evaluated: 42,
	}
	notice := interruptNotice(result)
	if !strings.Contains(notice, "12.50") || !strings.Contains(notice, "42") {
		t.Errorf("notice %q must report the partial best and its evaluation count", notice)
	}
}
