package service

import (
	"bytes"
	"encoding/json"

	apperrors "tasting-contest-backend/internal/errors"

	"github.com/hjson/hjson-go/v4"
	"gorm.io/datatypes"
)

// ParseMetadata normalises a metadata value to an object. It accepts a JSON
// object, or a string holding relaxed JSON (HJSON: unquoted keys and values,
// comments, trailing commas, omitted root braces). Null or absent yields nil.
func ParseMetadata(field string, raw json.RawMessage) (datatypes.JSONMap, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '{':
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, apperrors.NewValidationError(field, "invalid JSON object")
		}
		return datatypes.JSONMap(obj), nil
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, apperrors.NewValidationError(field, "invalid string")
		}
		return parseRelaxed(field, text)
	}
	return nil, apperrors.NewValidationError(field, "must be an object or a relaxed JSON string")
}

func parseRelaxed(field, text string) (datatypes.JSONMap, error) {
	if len(bytes.TrimSpace([]byte(text))) == 0 {
		return nil, nil
	}
	var obj map[string]interface{}
	if err := hjson.Unmarshal([]byte(text), &obj); err != nil {
		return nil, apperrors.NewValidationError(field, "invalid relaxed JSON: "+err.Error())
	}
	if obj == nil {
		return nil, apperrors.NewValidationError(field, "must describe an object")
	}

	// round trip through JSON so stored values only hold JSON types
	normalised, err := json.Marshal(obj)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "unsupported value")
	}
	var out map[string]interface{}
	if err := json.Unmarshal(normalised, &out); err != nil {
		return nil, apperrors.NewValidationError(field, "unsupported value")
	}
	return datatypes.JSONMap(out), nil
}
