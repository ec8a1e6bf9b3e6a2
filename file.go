// File: params/file.go
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/averin/params/internal/argset"
)

// mergeFile back-fills unset parameter cells from the parameter file
// named by the reserved first positional argument. Cells that already
// carry an explicit value are never overwritten: command line wins
// over file, file wins over declared default. Unknown file keys are
// silently ignored.
func (r *Registry) mergeFile() error {
	path, ok := r.iniFile.Value()
	if !ok || path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: first positional argument should name a valid parameter INI file: %s", ErrIniFile, path)
	}

	values, err := loadFileValues(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIniFile, path, err)
	}

	for _, it := range r.items {
		if it.entry.IsSet() {
			continue
		}
		for _, name := range append([]string{it.name}, it.aliases...) {
			if v, ok := values[name]; ok {
				it.entry.Update(v, argset.SourceFile)
				break
			}
		}
	}
	return nil
}

// loadFileValues reads a parameter file into a flat map keyed by
// dotted parameter names. INI sections fold into the key: key AA in
// section AAA becomes "AAA.AA", the in-memory form of the on-disk
// section-qualified name. TOML, JSON and YAML documents flatten the
// same way.
func loadFileValues(path string) (map[string]string, error) {
	format := detectFileFormat(path)
	if format == "ini" {
		return loadINIValues(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			// INI accepts nearly anything, so it is the fallback after
			// the structured formats have been ruled out.
			return loadINIValues(path)
		}
	}

	nested := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML parameter file: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON parameter file: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML parameter file: %w", err)
		}
	}

	flat := flattenMap(nested, "")
	out := make(map[string]string, len(flat))
	for k, v := range flat {
		out[k] = fileValueString(v)
	}
	return out, nil
}

// loadINIValues reads an INI file case-sensitively and flattens its
// sections into dotted keys.
func loadINIValues(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, section := range cfg.Sections() {
		prefix := ""
		if section.Name() != ini.DefaultSection {
			prefix = section.Name() + "."
		}
		for _, key := range section.Keys() {
			out[prefix+key.Name()] = key.Value()
		}
	}
	return out, nil
}

// fileValueString renders a parsed file value in the raw string form
// value cells hold; sequences become comma-separated lists so vector
// parameters read them directly.
func fileValueString(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return "ini"
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
