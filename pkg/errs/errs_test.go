package errs_test

import (
	"fmt"
	"testing"

	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func Test_IsExpected(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected bool
	}{
		{
			name:     "should return true, since the error was custom",
			args:     errs.New("custom error"),
			expected: true,
		},
		{
			name:     "should return false, since the error wasn't custom",
			args:     fmt.Errorf("not custom error"),
			expected: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual := errs.IsExpected(tc.args)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_KindOf(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected errs.Kind
	}{
		{
			name:     "should return not found kind",
			args:     errs.NewNotFound("category not found"),
			expected: errs.KindNotFound,
		},
		{
			name:     "should return conflict kind",
			args:     errs.NewConflict("slug already in use"),
			expected: errs.KindConflict,
		},
		{
			name:     "should return invalid kind for plain custom error",
			args:     errs.New("bad input"),
			expected: errs.KindInvalid,
		},
		{
			name:     "should return invalid kind for unexpected error",
			args:     fmt.Errorf("boom"),
			expected: errs.KindInvalid,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual := errs.KindOf(tc.args)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_FieldErrors(t *testing.T) {
	t.Parallel()

	fieldErrors := errs.FieldErrors{}
	fieldErrors.Add("title", "this field is required")
	fieldErrors.Add("price", "a valid number is required")
	fieldErrors.Add("price", "must be a number")

	assert.Equal(t, "price: a valid number is required; must be a number, title: this field is required", fieldErrors.Error())
	assert.Len(t, fieldErrors["price"], 2)
}
