package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/opencollegedata/cds-extract/internal/common"
	"github.com/opencollegedata/cds-extract/internal/entity"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("OUTPUT_SCHEMA", "document does not match the output schema", err)
	}
	return nil
}

// MarshalSchoolJSON serializes the canonical output document and checks
// it against the embedded schema.
func MarshalSchoolJSON(school *entity.SchoolData) ([]byte, error) {
	data, err := json.MarshalIndent(school, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal school: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildSchoolJSONSchema(), data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteSchoolJSON writes the output document to path, creating parent
// directories as needed.
func WriteSchoolJSON(path string, school *entity.SchoolData, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := MarshalSchoolJSON(school)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("output.json.ok", "path", path, "years", len(school.Years), "bytes", len(data))
	return nil
}
