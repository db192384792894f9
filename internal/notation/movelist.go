package notation

import (
	"strconv"
	"strings"
)

// RenderMoveList numbers a sequence of SAN moves for display, for example
// "1. e4 e5 2. Nf3". When blackFirst is set the first move is Black's and
// is written as "12... Nf6".
func RenderMoveList(sans []string, startFullmove int, blackFirst bool) string {
	if startFullmove < 1 {
		startFullmove = 1
	}

	var sb strings.Builder
	number := startFullmove
	whiteToMove := !blackFirst
	for i, san := range sans {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case whiteToMove:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString(". ")
		case i == 0:
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString("... ")
		}
		sb.WriteString(san)
		if !whiteToMove {
			number++
		}
		whiteToMove = !whiteToMove
	}
	return sb.String()
}
