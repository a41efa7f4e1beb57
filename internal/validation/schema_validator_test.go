package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const rankRangeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"min_rank": {"type": "integer", "minimum": 1, "maximum": 255},
		"max_rank": {"type": "integer", "minimum": 1, "maximum": 255},
		"policy": {"type": "string", "enum": ["strict", "lenient"]}
	},
	"required": ["min_rank", "max_rank"]
}`

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := writeSchema(t, tmpDir, "range.schema.json", rankRangeSchema)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid range",
			data: `{"min_rank": 1, "max_rank": 6}`,
		},
		{
			name: "valid range with policy",
			data: `{"min_rank": 7, "max_rank": 12, "policy": "strict"}`,
		},
		{
			name:      "missing required field",
			data:      `{"min_rank": 1}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"min_rank": "one", "max_rank": 6}`,
			wantError: true,
			errorMsg:  "min_rank",
		},
		{
			name:      "rank out of range",
			data:      `{"min_rank": 0, "max_rank": 6}`,
			wantError: true,
			errorMsg:  "min_rank",
		},
		{
			name:      "unknown policy",
			data:      `{"min_rank": 1, "max_rank": 6, "policy": "loose"}`,
			wantError: true,
			errorMsg:  "policy",
		},
		{
			name:      "invalid JSON",
			data:      `{"min_rank": 1, "max_rank": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, schemaPath)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateWithSchema(t *testing.T) {
	validator := NewSchemaValidator()

	if err := validator.ValidateWithSchema([]byte(`{"min_rank": 1, "max_rank": 2}`), "range", []byte(rankRangeSchema)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err := validator.ValidateWithSchema([]byte(`{"max_rank": 2}`), "range", []byte(rankRangeSchema))
	if err == nil {
		t.Fatal("Expected error for missing min_rank")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("Expected schema validation failure, got: %v", err)
	}
}

func TestSchemaValidator_InvalidSchemaDocument(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateWithSchema([]byte(`{}`), "broken", []byte(`{"type": `))
	if err == nil {
		t.Fatal("Expected error for malformed schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema broken") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	dataPath := filepath.Join(tmpDir, "data.json")
	if err := os.WriteFile(dataPath, []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	err := validator.ValidateFile(dataPath, "nonexistent.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}

	schemaPath := writeSchema(t, tmpDir, "range.schema.json", rankRangeSchema)
	err = validator.ValidateFile("nonexistent.json", schemaPath)
	if err == nil || !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	tmpDir := t.TempDir()
	schemaPath := writeSchema(t, tmpDir, "range.schema.json", rankRangeSchema)

	data := []byte(`{"min_rank": 1, "max_rank": 6}`)
	for i := 0; i < 2; i++ {
		if err := v.ValidateBytes(data, schemaPath); err != nil {
			t.Fatalf("Validation %d failed: %v", i, err)
		}
		if len(v.schemas) != 1 {
			t.Errorf("Expected 1 cached schema, got %d", len(v.schemas))
		}
	}

	if err := v.ValidateWithSchema(data, "inline", []byte(rankRangeSchema)); err != nil {
		t.Fatalf("Inline validation failed: %v", err)
	}
	if len(v.schemas) != 2 {
		t.Errorf("Expected 2 cached schemas, got %d", len(v.schemas))
	}
}
