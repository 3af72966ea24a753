package gohocon

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemInputNameDefaultsAndOpen(t *testing.T) {
	in := NewMemInput("", []byte("a=1"))
	assert.Equal(t, "<mem>", in.name())

	r, err := in.open()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a=1", string(data))
}

func TestMemInputNamedPreserved(t *testing.T) {
	in := NewMemInput("config.conf", []byte("x=1"))
	assert.Equal(t, "config.conf", in.name())
}

func TestReaderInputRejectsNilReader(t *testing.T) {
	in := &ReaderInput{Name: "r"}
	_, err := in.open()
	require.Error(t, err)
	assert.Equal(t, InvalidArgument, err.(*Error).Kind)
}

func TestReaderInputWrapsReader(t *testing.T) {
	buf := bytes.NewBufferString("a=1")
	in := NewReaderInput("", buf)
	assert.Equal(t, "<reader>", in.name())

	r, err := in.open()
	require.NoError(t, err)
	assert.Same(t, io.Reader(buf), r)
}
