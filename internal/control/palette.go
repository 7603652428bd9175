package control

import "github.com/lucasb-eyer/go-colorful"

// Swatch is one entry of the panel color picker.
type Swatch struct {
	Name  string
	Color colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette is what the frontends offer in place of a free color input.
var Palette = []Swatch{
	{"cyan", mustHex("#00ffff")},
	{"magenta", mustHex("#ff00ff")},
	{"amber", mustHex("#ffaa00")},
	{"lime", mustHex("#88ff00")},
	{"azure", mustHex("#0077ff")},
	{"coral", mustHex("#ff5566")},
	{"violet", mustHex("#8844ff")},
	{"slate", mustHex("#334455")},
}
