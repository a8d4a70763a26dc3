package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobTextLongEnough(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty", text: "", want: false},
		{name: "exactly 50", text: strings.Repeat("a", 50), want: false},
		{name: "51", text: strings.Repeat("a", 51), want: true},
		{name: "50 padded with whitespace", text: "  \n" + strings.Repeat("a", 50) + "\t ", want: false},
		{name: "multibyte counted as characters", text: strings.Repeat("é", 50), want: false},
		{name: "51 multibyte", text: strings.Repeat("é", 51), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JobTextLongEnough(tt.text))
		})
	}
}
