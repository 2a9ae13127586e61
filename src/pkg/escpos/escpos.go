// Package escpos models a receipt as a typed directive list and encodes it
// to ESC/POS bytes. Formatting logic stays out of this package; it only owns
// the wire encoding.
package escpos

const (
	esc = 0x1B
	gs  = 0x1D
)

type Alignment byte

const (
	AlignLeft   Alignment = 0x00
	AlignCenter Alignment = 0x01
	AlignRight  Alignment = 0x02
)

type TextSize byte

const (
	SizeNormal       TextSize = 0x00
	SizeDoubleHeight TextSize = 0x10
	SizeDoubleWidth  TextSize = 0x20
	SizeDouble       TextSize = 0x30
)

// Directive is one printer instruction.
type Directive interface {
	directive()
}

type Initialize struct{}

type DefaultLineSpacing struct{}

type SetAlignment struct {
	Align Alignment
}

type SetSize struct {
	Size TextSize
}

type SetBold struct {
	On bool
}

// Text is literal content, written verbatim. Callers terminate lines with \n.
type Text struct {
	Content string
}

type Cut struct{}

func (Initialize) directive()         {}
func (DefaultLineSpacing) directive() {}
func (SetAlignment) directive()      {}
func (SetSize) directive()           {}
func (SetBold) directive()           {}
func (Text) directive()              {}
func (Cut) directive()               {}
