package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectCardLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"planboard"},
			want: []string{"planboard"},
		},
		{
			name: "direct card id first token",
			in:   []string{"planboard", "card-abc123"},
			want: []string{"planboard", "cards", "show", "card-abc123"},
		},
		{
			name: "direct card id after value flag",
			in:   []string{"planboard", "--board", "./tmp-board.db", "card-abc123"},
			want: []string{"planboard", "--board", "./tmp-board.db", "cards", "show", "card-abc123"},
		},
		{
			name: "direct card id after equals flag",
			in:   []string{"planboard", "--board=./tmp-board.db", "card-abc123"},
			want: []string{"planboard", "--board=./tmp-board.db", "cards", "show", "card-abc123"},
		},
		{
			name: "direct card id after bool flag",
			in:   []string{"planboard", "--pretty", "card-abc123"},
			want: []string{"planboard", "--pretty", "cards", "show", "card-abc123"},
		},
		{
			name: "direct card id after double dash",
			in:   []string{"planboard", "--board", "./tmp-board.db", "--", "card-abc123"},
			want: []string{"planboard", "--board", "./tmp-board.db", "--", "cards", "show", "card-abc123"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"planboard", "cards", "show", "card-abc123"},
			want: []string{"planboard", "cards", "show", "card-abc123"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"planboard", "wat"},
			want: []string{"planboard", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectCardLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectCardLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
