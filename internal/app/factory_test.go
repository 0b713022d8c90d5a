package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/log"
)

func TestNewOutsideProjectUsesNopLogger(t *testing.T) {
	t.Chdir(t.TempDir())

	a := New(Options{PagerDisabled: true})
	require.NotNil(t, a)
	defer a.Close()

	assert.IsType(t, log.NopLogger{}, a.Logger)
	assert.NotNil(t, a.Output)
	assert.NotNil(t, a.Styler)
}

func TestNewForTestingWritesToSink(t *testing.T) {
	var buf bytes.Buffer

	a := NewForTesting(&buf)
	a.Output.Printf("hello %s", "world")

	assert.Equal(t, "hello world", buf.String())
}

func TestCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	a := NewForTesting(&buf)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Nil(t, a.Logger)
}
