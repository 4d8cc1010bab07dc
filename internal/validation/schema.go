// Package validation checks snapshot files before they are graded.
package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/spboyer/scorecard/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// snapshotSchema is the compiled JSON Schema for snapshot files.
var snapshotSchema *jsonschema.Schema

func init() {
	snapshotSchema = mustCompileSchema(schemas.SnapshotSchemaJSON, "snapshot.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateSnapshotFile validates a snapshot file (YAML or JSON) at path.
// Schema problems come back as messages; err is only set when the file
// cannot be read.
func ValidateSnapshotFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	return ValidateSnapshotBytes(data), nil
}

// ValidateSnapshotBytes validates raw YAML or JSON bytes against the
// snapshot schema, then runs the cross-field checks the schema cannot
// express.
func ValidateSnapshotBytes(data []byte) []string {
	// JSON is a subset of YAML, so one parser serves both formats.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	if errs := validateAgainstSchema(snapshotSchema, convertToJSONCompatible(doc)); len(errs) > 0 {
		return errs
	}
	return checkConsistency(data)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, nil, &errs)
	return errs
}

// collectSchemaErrors flattens ve into "/<pointer>: <message>" lines.
// propertyNames failures validate the key as a standalone instance, so their
// causes carry no location; they are reported at the offending key instead.
func collectSchemaErrors(ve *jsonschema.ValidationError, at []string, errs *[]string) {
	loc := ve.InstanceLocation
	if len(loc) == 0 && at != nil {
		loc = at
	}
	if len(ve.Causes) == 0 {
		*errs = append(*errs, fmt.Sprintf("/%s: %s", strings.Join(loc, "/"), ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	next := at
	if pn, ok := ve.ErrorKind.(*kind.PropertyNames); ok {
		next = append(slices.Clone(loc), pn.Property)
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, next, errs)
	}
}

// convertToJSONCompatible converts YAML-decoded values to JSON-compatible
// types. Mappings with non-string keys have their keys stringified.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[fmt.Sprint(k)] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
