package postgres

import (
	"encoding/json"
	"fmt"
)

// marshalJSONB serializes a structured field for a JSONB column.
func marshalJSONB(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSONB value: %w", err)
	}
	return data, nil
}

// unmarshalJSONB deserializes a JSONB column into v. NULL columns are
// left as v's zero value.
func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSONB value: %w", err)
	}
	return nil
}
