// Package config loads a host's symbol/keyword tables — the "external
// tables" the lexer and parser are built against — from a YAML language
// definition file, instead of requiring them to be supplied in-process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// LanguageDefinition is the decoded shape of a language definition file.
type LanguageDefinition struct {
	LangVersion string   `yaml:"langVersion" json:"langVersion"`
	Symbols     []string `yaml:"symbols" json:"symbols"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
}

// schemaDoc is the embedded JSON Schema every language definition file
// is validated against before its tables reach the DFA builder. Keeping
// this inline (rather than go:embed'ing a file) matches the size of
// what it guards: three required top-level fields, nothing more.
const schemaDoc = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["langVersion", "symbols", "keywords"],
	"properties": {
		"langVersion": {"type": "string", "minLength": 1},
		"symbols": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"keywords": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	url := "schema://langdef.json"
	if err := compiler.AddResource(url, strings.NewReader(schemaDoc)); err != nil {
		panic(fmt.Sprintf("config: embedded schema is invalid: %v", err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("config: embedded schema failed to compile: %v", err))
	}
	return schema
}

// Load reads and validates a language definition file at path, returning
// its symbol and keyword tables ready to hand to lang.New.
func Load(path string) (symbols, keywords []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes a language definition document already in
// memory (YAML source bytes).
func Parse(data []byte) (symbols, keywords []string, err error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("config: parsing YAML: %w", err)
	}

	// jsonschema validates against a JSON-shaped document tree (map[string]any
	// with plain string/float64/bool/nil leaves), not YAML's native node
	// types, so round-trip through JSON before validating.
	jsonCompatible, err := toJSONCompatible(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("config: normalizing document: %w", err)
	}
	if err := compiledSchema.Validate(jsonCompatible); err != nil {
		return nil, nil, fmt.Errorf("config: schema validation failed: %w", err)
	}

	var def LanguageDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, nil, fmt.Errorf("config: decoding document: %w", err)
	}
	if !semver.IsValid("v" + strings.TrimPrefix(def.LangVersion, "v")) {
		return nil, nil, fmt.Errorf("config: langVersion %q is not a valid semantic version", def.LangVersion)
	}
	return def.Symbols, def.Keywords, nil
}

// toJSONCompatible round-trips v through encoding/json so that yaml.v3's
// map[string]any/[]any tree becomes the map[string]interface{}/[]interface{}
// shape jsonschema.Validate expects.
func toJSONCompatible(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
