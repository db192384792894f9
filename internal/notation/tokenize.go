package notation

import "strings"

// scanner walks PGN movetext and yields move tokens from the main line.
type scanner struct {
	text     string
	pos      int
	ravLevel int
}

// Tokenize splits PGN movetext into algebraic move tokens. Tag pairs,
// move numbers, comments ({...} and ; to end of line), NAGs, annotation
// suffixes, variations and game results are dropped. Check marks are kept
// on the tokens.
func Tokenize(movetext string) []string {
	s := &scanner{text: movetext}
	var tokens []string
	for {
		tok, ok := s.next()
		if !ok {
			return tokens
		}
		if tok != "" && s.ravLevel == 0 {
			tokens = append(tokens, tok)
		}
	}
}

func (s *scanner) current() byte {
	return s.text[s.pos]
}

func (s *scanner) skipPast(end byte) {
	if i := strings.IndexByte(s.text[s.pos:], end); i >= 0 {
		s.pos += i + 1
	} else {
		s.pos = len(s.text)
	}
}

// next returns the next move token, "" for a skipped symbol, and false at
// the end of input.
func (s *scanner) next() (string, bool) {
	if s.pos >= len(s.text) {
		return "", false
	}

	ch := s.current()
	switch {
	case isSpace(ch):
		s.pos++
	case ch == '{':
		s.skipPast('}')
	case ch == ';', ch == '%':
		s.skipPast('\n')
	case ch == '[':
		s.skipTag()
	case ch == '(':
		s.ravLevel++
		s.pos++
	case ch == ')':
		if s.ravLevel > 0 {
			s.ravLevel--
		}
		s.pos++
	case ch == '}', ch == ']':
		s.pos++
	case ch == '$':
		s.pos++
		for s.pos < len(s.text) && isDigit(s.current()) {
			s.pos++
		}
	default:
		return s.gatherWord(), true
	}
	return "", true
}

// skipTag skips a [Name "value"] pair, honouring quoted brackets.
func (s *scanner) skipTag() {
	inString := false
	for s.pos < len(s.text) {
		c := s.current()
		s.pos++
		switch {
		case c == '\\' && inString:
			s.pos++
		case c == '"':
			inString = !inString
		case c == ']' && !inString:
			return
		}
	}
}

func (s *scanner) gatherWord() string {
	start := s.pos
	for s.pos < len(s.text) && !isDelimiter(s.current()) {
		s.pos++
	}
	return cleanWord(s.text[start:s.pos])
}

// cleanWord strips a leading move number and trailing annotations, and
// returns "" for words that are not moves.
func cleanWord(word string) string {
	// "12." or "12..." possibly glued to the move, as in "1.e4".
	digits := 0
	for digits < len(word) && isDigit(word[digits]) {
		digits++
	}
	if digits > 0 && digits < len(word) && word[digits] == '.' {
		word = word[digits:]
	}
	word = strings.TrimLeft(word, ".")
	word = strings.TrimRightFunc(word, func(r rune) bool {
		return r < 128 && isAnnotation(byte(r))
	})

	switch word {
	case "", "1-0", "0-1", "1/2-1/2", "1/2", "*", "e.p.", "ep", "--":
		return ""
	}
	if strings.Trim(word, "0123456789") == "" {
		return ""
	}
	return word
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '[', ']', ';', '$':
		return true
	}
	return isSpace(c)
}
