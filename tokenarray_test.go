package gohocon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenArrayAppendAndAt(t *testing.T) {
	a := NewTokenArray(2)
	a.Append(Token{Typ: Equal})
	a.Append(Token{Typ: Comma})

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, Equal, a.At(0).Typ)
	assert.Equal(t, Comma, a.At(1).Typ)
}

func TestTokenArrayResetReusesBacking(t *testing.T) {
	a := NewTokenArray(4)
	a.Append(Token{Typ: Equal})
	a.Reset()
	assert.Equal(t, 0, a.Len())

	a.Append(Token{Typ: Colon})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, Colon, a.At(0).Typ)
}

func TestTokenArrayCloneIsIndependent(t *testing.T) {
	a := NewTokenArray(1)
	a.Append(Token{Typ: Equal})
	clone := a.Clone()
	a.Append(Token{Typ: Colon})

	assert.Len(t, clone, 1)
	assert.Equal(t, 2, a.Len())
}
