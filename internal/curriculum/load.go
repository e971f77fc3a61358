package curriculum

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the curriculum format major version this build reads.
const SupportedMajor = "v1"

//go:embed default.yaml
var defaultYAML []byte

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Default returns the bundled curriculum. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Overview {
	o, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("bundled curriculum: %v", err))
	}
	return o
}

// Format is the encoding of a curriculum document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported curriculum file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads, validates and decodes the curriculum at path.
func Load(path string) (*Overview, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	o, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Parse decodes and validates a curriculum document. YAML is normalized to
// JSON first so both formats go through the same schema check.
func Parse(data []byte, format Format) (*Overview, error) {
	doc := data
	if format == FormatYAML {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		var err error
		if doc, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("normalize yaml: %w", err)
		}
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var o Overview
	if err := json.Unmarshal(doc, &o); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	if err := Validate(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func validateSchema(doc []byte) error {
	compileOnce.Do(func() {
		var def any
		def, compileErr = jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if compileErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource("schema://curriculum.json", def); compileErr != nil {
			return
		}
		compiled, compileErr = c.Compile("schema://curriculum.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile curriculum schema: %w", compileErr)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parse curriculum: %w", err)
	}
	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("curriculum schema validation failed: %w", err)
	}
	return nil
}

// Validate performs the semantic checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(o *Overview) error {
	var errs []string

	if !semver.IsValid(o.Version) {
		errs = append(errs, fmt.Sprintf("version %q is not valid semver", o.Version))
	} else if semver.Major(o.Version) != SupportedMajor {
		errs = append(errs, fmt.Sprintf("version %s not supported (want %s.x.y)", o.Version, SupportedMajor))
	}

	sections := make(map[string]bool, len(o.Sections))
	ids := make(map[string]string)
	for _, s := range o.Sections {
		if s.Name == "" {
			errs = append(errs, "section with empty name")
		}
		if sections[s.Name] {
			errs = append(errs, fmt.Sprintf("duplicate section name: %q", s.Name))
		}
		sections[s.Name] = true

		for _, m := range s.Submodules {
			if prev, ok := ids[m.ID]; ok {
				errs = append(errs, fmt.Sprintf("duplicate submodule ID %q in sections %q and %q", m.ID, prev, s.Name))
			}
			ids[m.ID] = s.Name

			st := m.Stats
			if st.VideoMinutes < 0 || st.TimedTextMinutes < 0 || st.UntimedItems < 0 || st.QuestionsTotal < 0 {
				errs = append(errs, fmt.Sprintf("submodule %q has negative stats", m.ID))
			}
			if st.TotalTimeMinutes != nil && *st.TotalTimeMinutes < 0 {
				errs = append(errs, fmt.Sprintf("submodule %q has negative total_time_minutes", m.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Marshal encodes o in the given format.
func Marshal(o *Overview, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(o, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
