package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/restful-notes/internal/validation"
)

type constrained struct {
	Value *string `json:"value" validate:"nullornotblank"`
}

type required struct {
	Title string `json:"title" validate:"notblank"`
	Body  string `json:"body" validate:"notblank"`
}

func ptr(s string) *string { return &s }

func TestNullOrNotBlank(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{name: "null value", value: nil, wantErr: false},
		{name: "zero length value", value: ptr(""), wantErr: true},
		{name: "blank value", value: ptr("   "), wantErr: true},
		{name: "tab and newline", value: ptr("\t\n"), wantErr: true},
		{name: "non-blank value", value: ptr("test"), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(constrained{Value: tt.value})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs *validation.Errors
			require.True(t, errors.As(err, &verrs), "err = %v, want *validation.Errors", err)
			require.Len(t, verrs.Violations, 1)
			assert.Equal(t, "value", verrs.Violations[0].Field)
			assert.Equal(t, "nullornotblank", verrs.Violations[0].Constraint)
			assert.Equal(t, "must be null or not blank", verrs.Violations[0].Message)
		})
	}
}

func TestNotBlank(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(required{Title: "REST", Body: "maturity model"}))

	err := v.Validate(required{Title: "  ", Body: ""})
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Violations, 2)

	fields := []string{verrs.Violations[0].Field, verrs.Violations[1].Field}
	assert.ElementsMatch(t, []string{"title", "body"}, fields)
	for _, viol := range verrs.Violations {
		assert.Equal(t, "notblank", viol.Constraint)
		assert.Equal(t, "must not be blank", viol.Message)
	}
}

func TestErrors_Error(t *testing.T) {
	err := &validation.Errors{Violations: []validation.Violation{
		{Field: "title", Constraint: "notblank", Message: "must not be blank"},
		{Field: "body", Constraint: "notblank", Message: "must not be blank"},
	}}
	assert.Equal(t, "title must not be blank; body must not be blank", err.Error())
}
