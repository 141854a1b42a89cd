package csvtable

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"empty line", "", nil},
		{"whitespace trimmed", "a, b , c", []string{"a", "b", "c"}},
		{"single field", "hello", []string{"hello"}},
		{"trailing comma", "a,b,", []string{"a", "b", ""}},
		{"leading comma", ",a", []string{"", "a"}},
		{"only commas", ",,", []string{"", "", ""}},
		{"comma inside quotes", `"a,b",c`, []string{"a,b", "c"}},
		{"doubled quote", `"a""b",c`, []string{`a"b`, "c"}},
		{"quoted whitespace trimmed", `" a ",b`, []string{"a", "b"}},
		{"unterminated quote", `"unterminated,c`, []string{"unterminated,c"}},
		{"unterminated quote with spaces", `" x, y `, []string{"x, y"}},
		{"quoted empty field", `"",a`, []string{"", "a"}},
		{"stray quote mid field", `a"b,c",d`, []string{"ab,c", "d"}},
		{"quoted then trailing comma", `"a",`, []string{"a", ""}},
		{"utf-8 content", "å,ö,漢", []string{"å", "ö", "漢"}},
		{"utf-8 inside quotes", `"å,ö",漢`, []string{"å,ö", "漢"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineEmptyYieldsNoFields(t *testing.T) {
	if got := ParseLine(""); len(got) != 0 {
		t.Errorf("ParseLine(\"\") = %q, want no fields", got)
	}
}

// A row whose fields contain no delimiter or quote characters survives a
// join-and-reparse round trip.
func TestParseLineRoundTrip(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"alpha", "beta"},
		{"x"},
		{"one", "", "three"},
	}
	for _, fields := range rows {
		line := ""
		for i, f := range fields {
			if i > 0 {
				line += ","
			}
			line += f
		}
		got := ParseLine(line)
		if !reflect.DeepEqual(got, fields) {
			t.Errorf("round trip of %q = %q, want %q", line, got, fields)
		}
	}
}
