package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Nivando Soares", want: "nivando-soares-cv.pdf"},
		{name: "  Nivando   Soares  ", want: "nivando-soares-cv.pdf"},
		{name: "José da Conceição", want: "jose-da-conceicao-cv.pdf"},
		{name: "Anne-Marie O'Neil", want: "anne-marie-o-neil-cv.pdf"},
		{name: "R2 D2", want: "r2-d2-cv.pdf"},
		{name: "", want: "cv.pdf"},
		{name: "!!!", want: "cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.name))
		})
	}
}
