// Package config - HCL configuration files
package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"supplier-cost/internal/errors"
)

// hclFile is the HCL schema for a configuration file.
//
//	search {
//	  strategy           = "adaptive"
//	  workers            = 8
//	  initial_batch_size = 1000
//	  memory_margin_gb   = 2
//	}
//
//	group "ACME" { include = true }
type hclFile struct {
	Search  *hclSearch  `hcl:"search,block"`
	Output  *hclOutput  `hcl:"output,block"`
	Logging *hclLogging `hcl:"logging,block"`
	Groups  []hclGroup  `hcl:"group,block"`
}

type hclSearch struct {
	Strategy         *string  `hcl:"strategy,optional"`
	Workers          *int     `hcl:"workers,optional"`
	InitialBatchSize *int     `hcl:"initial_batch_size,optional"`
	MemoryMarginGB   *float64 `hcl:"memory_margin_gb,optional"`
	DepthBound       *int     `hcl:"depth_bound,optional"`
	TempDir          *string  `hcl:"temp_dir,optional"`
	TimeoutSeconds   *int     `hcl:"timeout_seconds,optional"`
}

type hclOutput struct {
	Format    *string `hcl:"format,optional"`
	Directory *string `hcl:"directory,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	Output *string `hcl:"output,optional"`
}

type hclGroup struct {
	Name    string `hcl:"name,label"`
	Include bool   `hcl:"include"`
}

// loadHCL parses an HCL configuration file and merges it over defaults.
func loadHCL(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Config("parsing HCL config", diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Config("decoding HCL config", diags)
	}

	config := Default()
	raw.apply(config)
	return config, nil
}

func (f *hclFile) apply(c *Config) {
	if s := f.Search; s != nil {
		setIf(&c.Search.Strategy, s.Strategy)
		setIf(&c.Search.Workers, s.Workers)
		setIf(&c.Search.InitialBatchSize, s.InitialBatchSize)
		setIf(&c.Search.MemoryMarginGB, s.MemoryMarginGB)
		setIf(&c.Search.DepthBound, s.DepthBound)
		setIf(&c.Search.TempDir, s.TempDir)
		setIf(&c.Search.TimeoutSeconds, s.TimeoutSeconds)
	}
	if o := f.Output; o != nil {
		setIf(&c.Output.Format, o.Format)
		setIf(&c.Output.Directory, o.Directory)
	}
	if l := f.Logging; l != nil {
		setIf(&c.Logging.Level, l.Level)
		setIf(&c.Logging.Format, l.Format)
		setIf(&c.Logging.Output, l.Output)
	}
	if len(f.Groups) > 0 {
		if c.Groups == nil {
			c.Groups = make(map[string]bool, len(f.Groups))
		}
		for _, g := range f.Groups {
			c.Groups[g.Name] = g.Include
		}
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
