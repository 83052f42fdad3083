package ast

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestFile_DumpAll_EmptyFileReturnsContent(t *testing.T) {
	f := &File{Filename: "empty.bean", Content: "; just a comment\n"}
	assert.Equal(t, f.Content, f.DumpAll())
}

func TestFile_DumpAll_FillsGapsFromContent(t *testing.T) {
	content := "2020-01-01 open Assets:Cash\n"
	span := Span{Start: 0, End: len(content) - 1}

	open := &Open{Date: NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), Account: "Assets:Cash"}

	f := &File{Filename: "f.bean", Content: content, Directives: []Directive{open}}
	open.Attach(f, span)

	assert.Equal(t, content, f.DumpAll())
}

func TestFile_DumpAll_MultipleDirectivesWithBlankLineGap(t *testing.T) {
	content := "2020-01-01 open Assets:Cash\n\n2020-01-02 close Assets:Cash\n"

	openEnd := len("2020-01-01 open Assets:Cash")
	open := &Open{Date: NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), Account: "Assets:Cash"}

	closeStart := len("2020-01-01 open Assets:Cash\n\n")
	closeEnd := len(content) - 1
	closeDir := &Close{Date: NewDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)), Account: "Assets:Cash"}

	f := &File{Filename: "f.bean", Content: content, Directives: []Directive{open, closeDir}}
	open.Attach(f, Span{Start: 0, End: openEnd})
	closeDir.Attach(f, Span{Start: closeStart, End: closeEnd})

	assert.Equal(t, content, f.DumpAll())
}
