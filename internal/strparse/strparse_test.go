// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParserOffsets(t *testing.T) {
	tests := []struct {
		sep   string
		input string
		want  []token
	}{
		{sep: "()", input: "a(b(d e) c)",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "(", offset: 1},
				{tok: "b", offset: 2},
				{tok: "(", offset: 3},
				{tok: "d", offset: 4},
				{tok: "e", offset: 6},
				{tok: ")", offset: 7},
				{tok: "c", offset: 9},
				{tok: ")", offset: 10},
			},
		},
		{sep: "()", input: "a    (   (  b )            ) c       ",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "(", offset: 5},
				{tok: "(", offset: 9},
				{tok: "b", offset: 12},
				{tok: ")", offset: 14},
				{tok: ")", offset: 27},
				{tok: "c", offset: 29},
			},
		},
		{sep: "|", input: "a   |  b   |c",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "|", offset: 4},
				{tok: "b", offset: 7},
				{tok: "|", offset: 11},
				{tok: "c", offset: 12},
			},
		},
	}
	for _, test := range tests {
		p := MakeParser(test.sep, test.input)
		require.Equal(t, test.want, p.tokens)
	}
}

func TestParserBasic(t *testing.T) {
	p := MakeParser("()", "1(2 30)")
	require.Equal(t, 1, p.Int())
	p.Expect("(")
	require.Equal(t, "2", p.Peek())
	require.Equal(t, 2, p.Int())
	require.Equal(t, 30, p.Int())
	p.Expect(")")
	require.True(t, p.Done())
	require.Equal(t, "", p.Next())
}

func TestParserErrf(t *testing.T) {
	p := MakeParser("()", "a(b")
	p.Expect("a", "(")
	require.PanicsWithError(
		t, `error parsing "a(b" at token "b": expected ")", got "b"`,
		func() { p.Expect(")") },
	)
}
