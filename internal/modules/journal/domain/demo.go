package domain

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// DemoEntry is a sample entry placed relative to the day it is seeded on.
type DemoEntry struct {
	DaysAgo int    `yaml:"days_ago"`
	Hour    int    `yaml:"hour"`
	Minute  int    `yaml:"minute"`
	Mood    Mood   `yaml:"mood"`
	Content string `yaml:"content"`
}

func DemoEntries() ([]DemoEntry, error) {
	var out []DemoEntry
	if err := yaml.Unmarshal(demoYAML, &out); err != nil {
		return nil, fmt.Errorf("decode demo entries: %w", err)
	}
	return out, nil
}

// At places the entry on the wall clock of loc.
func (d DemoEntry) At(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day()-d.DaysAgo, d.Hour, d.Minute, 0, 0, loc)
	return day.UTC()
}
