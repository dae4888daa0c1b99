package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadReport reads a native analyzer report from disk. The format is
// chosen by extension (.json, .yaml, .yml, .toml); a trailing .gz means
// the file is gzip-compressed in one of those formats.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	name := path
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompress report %s: %w", path, err)
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("decompress report %s: %w", path, err)
		}
		name = strings.TrimSuffix(name, ".gz")
	}

	var report Report
	switch ext := filepath.Ext(name); ext {
	case ".json":
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode JSON report %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode YAML report %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode TOML report %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported report format %q for %s", ext, path)
	}

	normalizeFindings(&report)
	return &report, nil
}

// normalizeFindings rewrites nested YAML maps into string-keyed maps so
// RawEvidence has one shape regardless of the source format.
func normalizeFindings(report *Report) {
	for i, item := range report.Findings {
		for k, v := range item {
			report.Findings[i][k] = normalizeValue(v)
		}
	}
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprintf("%v", k)] = normalizeValue(val)
		}
		return m
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalizeValue(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeValue(val)
		}
		return t
	default:
		return v
	}
}

// SignalMap returns the report's signal map with a nil map treated as
// empty; absent keys read as zero through ordinary map access.
func (r *Report) SignalMap() map[string]float64 {
	if r.Signals == nil {
		return map[string]float64{}
	}
	return r.Signals
}
