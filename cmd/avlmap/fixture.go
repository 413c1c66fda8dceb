package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var defaultFixture []byte

type fixturePair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type fixture struct {
	Pairs []fixturePair `yaml:"pairs"`
}

// loadFixture reads the pairs file at path, or the built in sample when
// path is empty.
func loadFixture(path string) (*fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading pairs: %w", err)
		}
	}
	return parseFixture(data, path)
}

func parseFixture(data []byte, path string) (*fixture, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		if path == "" {
			return nil, fmt.Errorf("parsing built in sample: %w", err)
		}
		return nil, fmt.Errorf("parsing pairs %s: %w", path, err)
	}
	return &f, nil
}
