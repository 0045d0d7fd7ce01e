package ipcore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexValue(t *testing.T) {
	assert.Equal(t, 0, HexValue('0'))
	assert.Equal(t, 9, HexValue('9'))
	assert.Equal(t, 10, HexValue('a'))
	assert.Equal(t, 15, HexValue('f'))
	assert.Equal(t, 10, HexValue('A'))
	assert.Equal(t, 15, HexValue('F'))
	assert.Equal(t, -1, HexValue('g'))
	assert.Equal(t, -1, HexValue(' '))
	assert.Equal(t, -1, HexValue(':'))
}

func TestBinaryCodec(t *testing.T) {
	tests := []struct {
		name  string
		desc  Desc
		words Words
		text  string
	}{
		{
			name:  "V4 loopback",
			desc:  Desc4,
			words: Words{127, 0, 0, 1},
			text:  "01111111000000000000000000000001",
		},
		{
			name:  "V4 all ones",
			desc:  Desc4,
			words: Words{255, 255, 255, 255},
			text:  strings.Repeat("1", 32),
		},
		{
			name:  "V6 loopback",
			desc:  Desc6,
			words: Words{0, 0, 0, 0, 0, 0, 0, 1},
			text:  strings.Repeat("0", 127) + "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendBinary(tt.desc, nil, tt.words)
			assert.Equal(t, tt.text, string(got))

			back, ok := ParseBinary(tt.desc, tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.words, back)
		})
	}

	t.Run("wrong length rejected", func(t *testing.T) {
		_, ok := ParseBinary(Desc4, "0101")
		assert.False(t, ok)
		_, ok = ParseBinary(Desc4, strings.Repeat("0", 33))
		assert.False(t, ok)
		_, ok = ParseBinary(Desc6, strings.Repeat("0", 32))
		assert.False(t, ok)
	})

	t.Run("bad rune rejected", func(t *testing.T) {
		_, ok := ParseBinary(Desc4, strings.Repeat("0", 31)+"2")
		assert.False(t, ok)
	})
}

func TestHexCodec(t *testing.T) {
	tests := []struct {
		name  string
		desc  Desc
		words Words
		text  string
	}{
		{"V4", Desc4, Words{192, 168, 1, 1}, "c0a80101"},
		{"V4 zero", Desc4, Words{0, 0, 0, 0}, "00000000"},
		{"V6 doc prefix", Desc6, Words{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}, "20010db8000000000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendHex(tt.desc, nil, tt.words)
			assert.Equal(t, tt.text, string(got))

			back, ok := ParseHex(tt.desc, tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.words, back)
		})
	}

	t.Run("uppercase input accepted", func(t *testing.T) {
		back, ok := ParseHex(Desc4, "C0A80101")
		require.True(t, ok)
		assert.Equal(t, Words{192, 168, 1, 1}, back)
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		_, ok := ParseHex(Desc4, "c0a8010")
		assert.False(t, ok)
		_, ok = ParseHex(Desc6, "20010db8")
		assert.False(t, ok)
	})

	t.Run("bad rune rejected", func(t *testing.T) {
		_, ok := ParseHex(Desc4, "c0a8010g")
		assert.False(t, ok)
	})
}
