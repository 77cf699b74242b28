package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "config.schema.json"

//go:embed schema/config.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking one config file.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Key     string // setting key, e.g. "sdk.include[1]"; empty for the whole file
	Message string
	Keyword string // failing schema keyword, e.g. "enum"
}

func (i ValidationIssue) String() string {
	if i.Key == "" {
		return i.Message
	}
	return i.Key + ": " + i.Message
}

// Summary joins the issues into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Issues))
	for n, issue := range r.Issues {
		parts[n] = issue.String()
	}
	return printer.Sprintf("%d issue(s): %s", len(r.Issues), strings.Join(parts, "; "))
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parsing config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("adding config schema: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling config schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks YAML config data against the config schema. An empty
// document is valid. The error is for data that is not YAML at all; schema
// violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}
	inst, err := decode(data)
	if err != nil {
		return nil, err
	}

	err = sch.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &ValidationResult{Issues: issues(ve)}, nil
}

// ValidateFile reads path and validates it.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Validate(data)
}

// decode turns YAML into the JSON value model the schema validator expects.
func decode(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config is not a plain key/value document: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(js))
}

// issues flattens the leaves of the error tree in document order, dropping
// duplicates and leaves without a keyword of their own.
func issues(root *jsonschema.ValidationError) []ValidationIssue {
	var out []ValidationIssue
	seen := make(map[ValidationIssue]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, cause := range ve.Causes {
				walk(cause)
			}
			return
		}
		if ve.ErrorKind == nil {
			return
		}
		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 || kw[len(kw)-1] == "$ref" {
			return
		}
		issue := ValidationIssue{
			Key:     settingKey(ve.InstanceLocation),
			Message: ve.ErrorKind.LocalizedString(printer),
			Keyword: kw[len(kw)-1],
		}
		if !seen[issue] {
			seen[issue] = true
			out = append(out, issue)
		}
	}
	walk(root)

	if len(out) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	return out
}

// settingKey renders an instance location such as [sdk include 1] the way
// settings are named on the command line: sdk.include[1].
func settingKey(location []string) string {
	var b strings.Builder
	for _, token := range location {
		if _, err := strconv.Atoi(token); err == nil {
			b.WriteString("[" + token + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(token)
	}
	return b.String()
}
