package bignum

// FormatSpec is the explicit configuration for rendering a Natural,
// Integer, or Rational as text. Go has no ambient stream-formatting
// state of its own, so Format derives a FormatSpec from the verb and
// flags fmt hands it, letting the standard %v/%d/%o/%x/%X verbs work
// without callers ever touching FormatSpec directly.
type FormatSpec struct {
	Base      int  // 8, 10, or 16; zero defaults to 10
	Uppercase bool // render hex digits A-F instead of a-f
	ShowBase  bool // prepend "0x"/"0X" for hex, a leading "0" for octal
}

func (f FormatSpec) base() int {
	if f.Base == 0 {
		return 10
	}
	return f.Base
}

// Decimal is the default FormatSpec: base 10, no prefix.
var Decimal = FormatSpec{Base: 10}

// Hex is base 16, lowercase, no "0x" prefix.
var Hex = FormatSpec{Base: 16}

// Octal is base 8, no leading-zero prefix.
var Octal = FormatSpec{Base: 8}
