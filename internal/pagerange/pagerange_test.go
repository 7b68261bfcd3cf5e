package pagerange

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		want        []int
		wantInvalid []string
	}{
		{
			name: "single number",
			expr: "5",
			want: []int{5},
		},
		{
			name: "comma separated numbers",
			expr: "3, 1, 2",
			want: []int{1, 2, 3},
		},
		{
			name: "inclusive range",
			expr: "2-5",
			want: []int{2, 3, 4, 5},
		},
		{
			name: "mixed ranges and singles",
			expr: "2-5, 17-20, 25",
			want: []int{2, 3, 4, 5, 17, 18, 19, 20, 25},
		},
		{
			name: "overlapping deduplicated",
			expr: "1-4, 3-6",
			want: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:        "inverted range skipped",
			expr:        "5-2, 7",
			want:        []int{7},
			wantInvalid: []string{"5-2"},
		},
		{
			name:        "garbage token skipped",
			expr:        "1, abc, 3",
			want:        []int{1, 3},
			wantInvalid: []string{"abc"},
		},
		{
			name:        "malformed range skipped",
			expr:        "1, 2-x",
			want:        []int{1},
			wantInvalid: []string{"2-x"},
		},
		{
			name: "empty tokens ignored",
			expr: "1,,2, ",
			want: []int{1, 2},
		},
		{
			name:        "all invalid",
			expr:        "x, y-z",
			want:        []int{},
			wantInvalid: []string{"x", "y-z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, invalid := Parse(tt.expr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.expr, got, tt.want)
			}
			if !reflect.DeepEqual(invalid, tt.wantInvalid) {
				t.Errorf("Parse(%q) invalid = %v, want %v", tt.expr, invalid, tt.wantInvalid)
			}
		})
	}
}
