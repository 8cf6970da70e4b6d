package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/validation"
)

func TestRequired(t *testing.T) {
	type testCase struct {
		name        string
		fields      []validation.Field
		wantMissing []string
	}

	tests := []testCase{
		{
			name: "AllFilled",
			fields: []validation.Field{
				{Name: "name", Value: "Awa"},
				{Name: "phone", Value: "+221 77 123 45 67"},
			},
		},
		{
			name: "OneBlank",
			fields: []validation.Field{
				{Name: "name", Value: "Awa"},
				{Name: "phone", Value: "   "},
			},
			wantMissing: []string{"phone"},
		},
		{
			name: "AllBlankKeepsOrder",
			fields: []validation.Field{
				{Name: "name", Value: ""},
				{Name: "phone", Value: ""},
			},
			wantMissing: []string{"name", "phone"},
		},
		{
			name: "NoFields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Required(tt.fields...)

			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMissing, vErr.Fields)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &validation.Error{Fields: []string{"name", "phone"}}
	assert.Equal(t, "missing required fields: name, phone", err.Error())

	// Wrapping keeps the type reachable for errors.As.
	wrapped := errors.Join(err, errors.New("save failed"))

	var vErr *validation.Error
	assert.True(t, errors.As(wrapped, &vErr))
}
