package opengl

import (
	"encoding/hex"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Atlas layout matches gui.DrawList.AddText: 16 columns by 6 rows of
// 8x8 cells for runes 32..127.
const (
	atlasCols   = 16
	atlasRows   = 6
	cellSize    = 8
	atlasWidth  = atlasCols * cellSize
	atlasHeight = atlasRows * cellSize
)

// glyphRows holds one 8x8 bitmap per printable ASCII rune, as eight
// hex-encoded row bytes with the most significant bit leftmost.
var glyphRows = [...]string{
	"0000000000000000", // ' '
	"1818181818001800", // '!'
	"6666000000000000", // '"'
	"247E24247E240000", // '#'
	"183E603C067C1800", // '$'
	"6264081026460000", // '%'
	"386C3876DCCC7600", // '&'
	"1818300000000000", // "'"
	"0C18303030180C00", // '('
	"30180C0C0C183000", // ')'
	"00663CFF3C660000", // '*'
	"0018187E18180000", // '+'
	"0000000000181830", // ','
	"0000007E00000000", // '-'
	"0000000000181800", // '.'
	"02060C1830604000", // '/'
	"3C666E7666663C00", // '0'
	"1838181818187E00", // '1'
	"3C66061C30607E00", // '2'
	"3C66061C06663C00", // '3'
	"0C1C3C6C7E0C0C00", // '4'
	"7E607C0606663C00", // '5'
	"1C30607C66663C00", // '6'
	"7E060C1830303000", // '7'
	"3C66663C66663C00", // '8'
	"3C66663E060C3800", // '9'
	"0000181800181800", // ':'
	"0000181800181830", // ';'
	"060C1830180C0600", // '<'
	"00007E007E000000", // '='
	"6030180C18306000", // '>'
	"3C66061C18001800", // '?'
	"3C666E6A6E603C00", // '@'
	"183C66667E666600", // 'A'
	"7C66667C66667C00", // 'B'
	"3C66606060663C00", // 'C'
	"786C6666666C7800", // 'D'
	"7E60607C60607E00", // 'E'
	"7E60607C60606000", // 'F'
	"3C66606E66663E00", // 'G'
	"6666667E66666600", // 'H'
	"7E18181818187E00", // 'I'
	"3E0C0C0C0C6C3800", // 'J'
	"666C7870786C6600", // 'K'
	"6060606060607E00", // 'L'
	"63777F6B63636300", // 'M'
	"66767E7E6E666600", // 'N'
	"3C66666666663C00", // 'O'
	"7C66667C60606000", // 'P'
	"3C6666666A6C3600", // 'Q'
	"7C66667C6C666600", // 'R'
	"3C66603C06663C00", // 'S'
	"7E18181818181800", // 'T'
	"6666666666663C00", // 'U'
	"66666666663C1800", // 'V'
	"6363636B7F776300", // 'W'
	"66663C183C666600", // 'X'
	"6666663C18181800", // 'Y'
	"7E060C1830607E00", // 'Z'
	"1C18181818181C00", // '['
	"406030180C060200", // '\\'
	"3818181818183800", // ']'
	"183C660000000000", // '^'
	"0000000000007E00", // '_'
	"30180C0000000000", // '`'
	"00003C063E663E00", // 'a'
	"60607C6666667C00", // 'b'
	"00003C6660663C00", // 'c'
	"06063E6666663E00", // 'd'
	"00003C667E603C00", // 'e'
	"1C30307C30303000", // 'f'
	"00003E66663E063C", // 'g'
	"60607C6666666600", // 'h'
	"1800381818183C00", // 'i'
	"0C001C0C0C0C6C38", // 'j'
	"6060666C786C6600", // 'k'
	"3818181818183C00", // 'l'
	"0000767F6B6B6300", // 'm'
	"00007C6666666600", // 'n'
	"00003C6666663C00", // 'o'
	"00007C66667C6060", // 'p'
	"00003E66663E0606", // 'q'
	"00006C7660606000", // 'r'
	"00003E603C067C00", // 's'
	"30307C3030301C00", // 't'
	"0000666666663E00", // 'u'
	"00006666663C1800", // 'v'
	"0000636B6B7F3600", // 'w'
	"0000663C183C6600", // 'x'
	"00006666663E063C", // 'y'
	"00007E0C18307E00", // 'z'
	"0E18187018180E00", // '{'
	"1818181818181800", // '|'
	"7018180E18187000", // '}'
	"000076DC00000000", // '~'
}

// fontAtlas rasterizes glyphRows into a single-channel bitmap.
func fontAtlas() []byte {
	data := make([]byte, atlasWidth*atlasHeight)
	for i, encoded := range glyphRows {
		rows, err := hex.DecodeString(encoded)
		if err != nil || len(rows) != cellSize {
			continue
		}
		col, row := i%atlasCols, i/atlasCols
		for y, bits := range rows {
			for x := 0; x < cellSize; x++ {
				if bits&(0x80>>x) != 0 {
					data[(row*cellSize+y)*atlasWidth+col*cellSize+x] = 255
				}
			}
		}
	}
	return data
}

// createFontTexture uploads the built-in bitmap font.
func createFontTexture() uint32 {
	data := fontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, atlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
