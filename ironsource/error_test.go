package ironsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := NewError(ErrorCodeNoAdsToShow, "No ads to show")

	assert.EqualError(t, err, "ironsource error 509: No ads to show")
	assert.Equal(t, "No ads to show", err.ErrorMessage())

	var missing *Error
	assert.Equal(t, "<nil>", missing.ErrorMessage())
}
