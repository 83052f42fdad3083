package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPositionAt_FirstByte(t *testing.T) {
	pos := PositionAt("bad.bean", "this is not a directive\n", 0)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 1, pos.Column)
	assert.Equal(t, "bad.bean:1:1", pos.String())
}

func TestPositionAt_AfterNewlines(t *testing.T) {
	content := "line one\nline two\nline three\n"
	pos := PositionAt("f.bean", content, len("line one\nline two\n"))
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 1, pos.Column)
}

func TestPositionAt_MidLine(t *testing.T) {
	content := "abcdef\n"
	pos := PositionAt("f.bean", content, 3)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 4, pos.Column)
}

func TestPositionAt_ClampsOutOfRangeOffset(t *testing.T) {
	content := "abc\n"
	pos := PositionAt("f.bean", content, 1000)
	assert.Equal(t, len(content), pos.Offset)
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	inner := Span{Start: 2, End: 8}
	disjoint := Span{Start: 9, End: 12}

	assert.True(t, outer.Contains(inner))
	assert.False(t, outer.Contains(disjoint))
	assert.True(t, outer.Contains(outer))
}

func TestSpan_Text(t *testing.T) {
	content := "2020-01-01 open Assets:Cash\n"
	span := Span{Start: 11, End: 27}
	assert.Equal(t, "open Assets:Cash", span.Text(content))

	zero := Span{}
	assert.Equal(t, "", zero.Text(content))
}

func TestSpan_IsZero(t *testing.T) {
	assert.True(t, Span{}.IsZero())
	assert.False(t, Span{Start: 0, End: 1}.IsZero())
}
