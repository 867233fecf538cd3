package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the config schema.
const SchemaID = "https://github.com/Gaurav-Gosain/winborder/config.schema.json"

// Schema returns the JSON schema of the config file. TOML-aware editors
// use it for completion and validation.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&UserConfig{})
	schema.ID = SchemaID
	schema.Title = "winborder configuration"
	schema.Description = "Configuration of the winborder focus border and its split-pane screen"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
