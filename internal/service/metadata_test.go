package service_test

import (
	"encoding/json"
	"testing"

	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]interface{}
		invalid bool
	}{
		{name: "absent", raw: ""},
		{name: "null", raw: "null"},
		{name: "object", raw: `{"region":"Mosel","score":92}`, want: map[string]interface{}{"region": "Mosel", "score": float64(92)}},
		{name: "relaxed string", raw: `"region: Mosel\nscore: 92"`, want: map[string]interface{}{"region": "Mosel", "score": float64(92)}},
		{name: "relaxed with braces and comments", raw: `"{\n  # house style\n  colour: \"white\",\n}"`, want: map[string]interface{}{"colour": "white"}},
		{name: "empty relaxed string", raw: `"  "`},
		{name: "broken relaxed string", raw: `"{colour: white"`, invalid: true},
		{name: "relaxed array", raw: `"[1, 2]"`, invalid: true},
		{name: "array", raw: `[1,2]`, invalid: true},
		{name: "number", raw: `42`, invalid: true},
		{name: "boolean", raw: `true`, invalid: true},
		{name: "broken object", raw: `{"a":`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseMetadata("metadata", json.RawMessage(tt.raw))
			if tt.invalid {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "metadata", verr.Field)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, map[string]interface{}(got))
		})
	}
}
