package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// layer is one configuration source. Layers are merged in the order they
// were added and a field keeps the value of the first layer that sets it.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, layer{source: source, cfg: cfg})
	}
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("merge %s config: %w", l.source, err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := loadEnv(nil)
	return b.add("env", cfg, err)
}

func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	return b.add("flags", cfg, err)
}

// withOverrides adds values set programmatically, the client CLI flags.
// A nil overrides is skipped.
func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	return b.add("overrides", overrides, nil)
}

// withFile loads the file named by the first layer with a FilePath.
func (b *configBuilder) withFile() *configBuilder {
	for _, l := range b.layers {
		if l.cfg.FilePath != "" {
			cfg, err := parseFile(l.cfg.FilePath)
			return b.add("file "+l.cfg.FilePath, cfg, err)
		}
	}
	return b
}

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	return b.add("defaults", defaults, nil)
}
