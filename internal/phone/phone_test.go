package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE164(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{"international", "+1 650-253-0000", "US", "+16502530000"},
		{"national with region", "650-253-0000", "US", "+16502530000"},
		{"extension", " 201 ", "US", "201"},
		{"garbage", "not a number", "US", "not a number"},
		{"empty", "   ", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, E164(tt.input, tt.region))
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "+1 650-253-0000", Display("+16502530000", "US"))
	assert.Equal(t, "2001", Display("2001", "US"))
}

func TestIsExtension(t *testing.T) {
	assert.True(t, IsExtension("201"))
	assert.True(t, IsExtension("20 1"))
	assert.False(t, IsExtension("+201"))
	assert.False(t, IsExtension("0612345678"))
	assert.False(t, IsExtension(""))
}

func TestDialable(t *testing.T) {
	assert.Equal(t, "+390721405516", Dialable(" +39 (0721) 405-516 "))
	assert.Equal(t, "*43", Dialable("*43"))
	assert.Equal(t, "12", Dialable("1+2"))
}

func TestStripSpaces(t *testing.T) {
	assert.Equal(t, "555123", StripSpaces(" 555 1\t23 "))
}
