package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NewError(KindConfiguration, ErrChangeMessageUnset)
	wrapped := fmt.Errorf("read change message: %w", err)

	assert.Equal(t, KindConfiguration, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrChangeMessageUnset))
	assert.Contains(t, err.Error(), "configuration error")
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
}

func TestNewError_Nil(t *testing.T) {
	assert.NoError(t, NewError(KindUsage, nil))
}
