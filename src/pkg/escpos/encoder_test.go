package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeControlSequences(t *testing.T) {
	tests := []struct {
		name      string
		directive Directive
		expected  []byte
	}{
		{"initialize", Initialize{}, []byte{0x1B, '@'}},
		{"default line spacing", DefaultLineSpacing{}, []byte{0x1B, '2'}},
		{"align left", SetAlignment{Align: AlignLeft}, []byte{0x1B, 'a', 0x00}},
		{"align center", SetAlignment{Align: AlignCenter}, []byte{0x1B, 'a', 0x01}},
		{"align right", SetAlignment{Align: AlignRight}, []byte{0x1B, 'a', 0x02}},
		{"size normal", SetSize{Size: SizeNormal}, []byte{0x1B, '!', 0x00}},
		{"size double", SetSize{Size: SizeDouble}, []byte{0x1B, '!', 0x30}},
		{"bold on", SetBold{On: true}, []byte{0x1B, 'E', 0x01}},
		{"bold off", SetBold{On: false}, []byte{0x1B, 'E', 0x00}},
		{"cut", Cut{}, []byte{0x1D, 'V', 0x00}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Encode([]Directive{tc.directive}))
		})
	}
}

func TestEncodeTextIsVerbatim(t *testing.T) {
	out := Encode([]Directive{Text{Content: "2x Pizza Calabresa\n"}})
	assert.Equal(t, []byte("2x Pizza Calabresa\n"), out)
}

func TestEncodeConcatenatesInOrder(t *testing.T) {
	out := Encode([]Directive{
		Initialize{},
		SetAlignment{Align: AlignCenter},
		Text{Content: "HI\n"},
		Cut{},
	})
	expected := append([]byte{0x1B, '@', 0x1B, 'a', 0x01}, []byte("HI\n")...)
	expected = append(expected, 0x1D, 'V', 0x00)
	assert.Equal(t, expected, out)
}

func TestEncodeEmptyList(t *testing.T) {
	assert.Empty(t, Encode(nil))
}
