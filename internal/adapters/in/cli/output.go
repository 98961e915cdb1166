package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bnema/rocker/internal/config"
)

type catalogOutput struct {
	Repositories []string `json:"repositories" yaml:"repositories"`
}

type tagsOutput struct {
	Name string   `json:"name" yaml:"name"`
	Tags []string `json:"tags" yaml:"tags"`
}

type deleteOutput struct {
	Image  string `json:"image" yaml:"image"`
	Digest string `json:"digest" yaml:"digest"`
}

type pingOutput struct {
	Host   string `json:"host" yaml:"host"`
	Status string `json:"status" yaml:"status"`
}

type versionOutput struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

// isStructured reports whether format bypasses the styled table output.
func isStructured(format string) bool {
	return format == config.OutputJSON || format == config.OutputYAML
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
