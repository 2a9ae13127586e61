package escpos

import "bytes"

// Encode renders the directive list to the byte stream a thermal printer
// consumes.
func Encode(directives []Directive) []byte {
	var buf bytes.Buffer

	for _, d := range directives {
		switch v := d.(type) {
		case Initialize:
			buf.Write([]byte{esc, '@'})
		case DefaultLineSpacing:
			buf.Write([]byte{esc, '2'})
		case SetAlignment:
			buf.Write([]byte{esc, 'a', byte(v.Align)})
		case SetSize:
			buf.Write([]byte{esc, '!', byte(v.Size)})
		case SetBold:
			if v.On {
				buf.Write([]byte{esc, 'E', 0x01})
			} else {
				buf.Write([]byte{esc, 'E', 0x00})
			}
		case Text:
			buf.WriteString(v.Content)
		case Cut:
			buf.Write([]byte{gs, 'V', 0x00})
		}
	}

	return buf.Bytes()
}
