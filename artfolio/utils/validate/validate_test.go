package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	URL string `json:"image_url" validate:"required"`
}

type payload struct {
	Name    string `json:"name" validate:"required,max=5"`
	Website string `json:"website" validate:"omitempty,url"`
	Items   []item `json:"items" validate:"dive"`
}

func TestStructReportsJSONNames(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(payload{Name: "ann"}))

	err := v.Struct(payload{Name: "annabelle", Website: "nope", Items: []item{{}}})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"name":               "must be at most 5 characters",
		"website":            "must be a valid URL",
		"items[0].image_url": "is required",
	}, verr.Fields)
	assert.Contains(t, err.Error(), "items[0].image_url: is required")
}
