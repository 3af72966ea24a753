package gohocon

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDottedKey(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitDottedKey("a.b.c"))
	assert.Equal(t, []string{"a"}, splitDottedKey("a"))
	assert.Equal(t, []string{"a.b", "c"}, splitDottedKey(`a\.b.c`))
}

func TestFlattenKeyText(t *testing.T) {
	toks := []Token{
		{Typ: Unquoted, Text: "a"},
		{Typ: Ws},
		{Typ: Unquoted, Text: "b"},
	}
	assert.Equal(t, "a b", flattenKeyText(toks))
}

func TestFlattenKeyTextEscapesDotsInQuotedSegment(t *testing.T) {
	toks := []Token{{Typ: String, Text: "a.b"}}
	assert.Equal(t, []string{"a.b"}, splitDottedKey(flattenKeyText(toks)))
}

func TestObjectSortStableByKeyThenIndex(t *testing.T) {
	o := &Object{Entries: []ObjectEntry{
		{Key: "b", OriginalIndex: 0},
		{Key: "a", OriginalIndex: 1},
		{Key: "a", OriginalIndex: 0},
	}}
	o.Sort()
	require.Len(t, o.Entries, 3)
	assert.Equal(t, "a", o.Entries[0].Key)
	assert.Equal(t, 0, o.Entries[0].OriginalIndex)
	assert.Equal(t, "a", o.Entries[1].Key)
	assert.Equal(t, 1, o.Entries[1].OriginalIndex)
	assert.Equal(t, "b", o.Entries[2].Key)
}

func TestObjectMergeKeysAssignOverwrites(t *testing.T) {
	o := &Object{Entries: []ObjectEntry{
		{Key: "a", Mode: Assign, Value: scalarValue("1", Number)},
		{Key: "a", Mode: Assign, Value: scalarValue("2", Number)},
	}}
	o.MergeKeys()
	require.Len(t, o.Entries, 1)
	assert.Equal(t, "2", o.Entries[0].Value.Tokens[0].Text)
}

func TestObjectMergeKeysAppendConcatenatesScalarSequence(t *testing.T) {
	o := &Object{Entries: []ObjectEntry{
		{Key: "a", Mode: Assign, Value: scalarValue("1", Number)},
		{Key: "a", Mode: Append, Value: scalarValue("2", Number)},
	}}
	o.MergeKeys()
	require.Len(t, o.Entries, 1)
	require.Len(t, o.Entries[0].Value.Tokens, 2)
	assert.Equal(t, "1", o.Entries[0].Value.Tokens[0].Text)
	assert.Equal(t, "2", o.Entries[0].Value.Tokens[1].Text)
}

func TestObjectMergeKeysAssignDeepMergesObjects(t *testing.T) {
	first := NewObject()
	first.Append("x", Assign, scalarValue("1", Number), 0)
	second := NewObject()
	second.Append("y", Assign, scalarValue("2", Number), 0)

	o := &Object{Entries: []ObjectEntry{
		{Key: "a", Mode: Assign, Value: ObjectValue(first)},
		{Key: "a", Mode: Assign, Value: ObjectValue(second)},
	}}
	o.MergeKeys()
	require.Len(t, o.Entries, 1)
	merged := o.Entries[0].Value.Obj
	require.Len(t, merged.Entries, 2)
	assert.Equal(t, "x", merged.Entries[0].Key)
	assert.Equal(t, "y", merged.Entries[1].Key)
}

func TestMergeObjectIdempotentOnAlreadySortedObject(t *testing.T) {
	o := &Object{Entries: []ObjectEntry{
		{Key: "a", Mode: Assign, Value: scalarValue("1", Number)},
		{Key: "b", Mode: Assign, Value: scalarValue("2", Number)},
	}}
	before := pretty.Sprint(o)
	mergeObject(o)
	assert.Equal(t, before, pretty.Sprint(o))
}

func TestMergeObjectWithItselfUnderAssignYieldsSameObject(t *testing.T) {
	o := &Object{Entries: []ObjectEntry{
		{Key: "a", Mode: Assign, Value: scalarValue("1", Number), OriginalIndex: 0},
		{Key: "a", Mode: Assign, Value: scalarValue("1", Number), OriginalIndex: 1},
	}}
	mergeObject(o)
	require.Len(t, o.Entries, 1)
	assert.Equal(t, "a", o.Entries[0].Key)
	assert.Equal(t, "1", o.Entries[0].Value.Tokens[0].Text)
}

func TestTreeSinkDottedKeyLeafCarriesAssignmentMode(t *testing.T) {
	sink := NewTreeSink()
	r := sink.Reader()
	require.True(t, r.ObjStart())
	require.True(t, r.KeyValStart([]Token{{Typ: Unquoted, Text: "a.b"}}, Append))
	require.True(t, r.Token(Token{Typ: Number, Text: "1"}))
	require.True(t, r.KeyValEnd())
	require.True(t, r.ObjEnd())

	tree := sink.Tree()
	require.NotNil(t, tree.Obj)
	outer := tree.Obj.Entries[0]
	assert.Equal(t, "a", outer.Key)
	assert.Equal(t, Assign, outer.Mode)
	inner := outer.Value.Obj.Entries[0]
	assert.Equal(t, "b", inner.Key)
	assert.Equal(t, Append, inner.Mode)
}
