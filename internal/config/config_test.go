package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.Strategy != "adaptive" {
		t.Errorf("strategy = %s, want default adaptive", cfg.Search.Strategy)
	}
	if cfg.Search.InitialBatchSize != 1000 {
		t.Errorf("initial batch size = %d, want 1000", cfg.Search.InitialBatchSize)
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Search.Strategy = "parallel"
	cfg.Search.Workers = 3
	cfg.Groups = map[string]bool{"D2": false}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Search.Strategy != "parallel" {
		t.Errorf("strategy = %s, want parallel", loaded.Search.Strategy)
	}
	if loaded.Search.Workers != 3 {
		t.Errorf("workers = %d, want 3", loaded.Search.Workers)
	}
	if include, ok := loaded.Groups["D2"]; !ok || include {
		t.Errorf("groups = %v, want D2 excluded", loaded.Groups)
	}
}

func TestLoadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	content := `
search {
  strategy         = "depth"
  depth_bound      = 4
  memory_margin_gb = 1.5
}

output {
  format = "csv"
}

group "D1" { include = true }
group "D2" { include = false }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Search.Strategy != "depth" {
		t.Errorf("strategy = %s, want depth", cfg.Search.Strategy)
	}
	if cfg.Search.DepthBound != 4 {
		t.Errorf("depth bound = %d, want 4", cfg.Search.DepthBound)
	}
	if cfg.Search.MemoryMarginGB != 1.5 {
		t.Errorf("memory margin = %v, want 1.5", cfg.Search.MemoryMarginGB)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("output format = %s, want csv", cfg.Output.Format)
	}

	// Unset attributes keep their defaults.
	if cfg.Search.InitialBatchSize != 1000 {
		t.Errorf("initial batch size = %d, want untouched default 1000", cfg.Search.InitialBatchSize)
	}

	if !cfg.Groups["D1"] {
		t.Error("group D1 must be included")
	}
	if include, ok := cfg.Groups["D2"]; !ok || include {
		t.Error("group D2 must be excluded")
	}
}

func TestLoadHCLRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	if err := os.WriteFile(path, []byte(`search { strategy = `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed HCL")
	}
}
