package token

// ASCII character lookup tables for fast classification (zero-allocation).
//
// Performance: prefer the inline bounds-checked lookup over a function
// call on hot paths:
//
//	if ch < 128 && isAlphaTable[ch] { ... }
var (
	isAlphaTable      [128]bool // a-z, A-Z
	isDigitTable      [128]bool // 0-9
	isWhitespaceTable [128]bool // space, tab, CR, LF
	isEscapedTable    [128]bool // n r t "
	isEndOfLineTable  [128]bool // CR, LF, NUL
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isAlphaTable[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isDigitTable[i] = '0' <= ch && ch <= '9'
		isWhitespaceTable[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		isEscapedTable[i] = ch == 'n' || ch == 'r' || ch == 't' || ch == '"'
		isEndOfLineTable[i] = ch == '\r' || ch == '\n' || ch == 0
	}
}

// IsAlpha reports whether ch is an ASCII letter.
func IsAlpha(ch byte) bool { return ch < 128 && isAlphaTable[ch] }

// IsDigit reports whether ch is an ASCII decimal digit.
func IsDigit(ch byte) bool { return ch < 128 && isDigitTable[ch] }

// IsWhitespace reports whether ch is space, tab, CR, or LF.
func IsWhitespace(ch byte) bool { return ch < 128 && isWhitespaceTable[ch] }

// IsEscapedChar reports whether ch is one of the characters accepted
// immediately after a backslash inside a string or character literal:
// n, r, t, or a literal double quote.
func IsEscapedChar(ch byte) bool { return ch < 128 && isEscapedTable[ch] }

// IsEndOfLine reports whether ch terminates a line: CR, LF, or NUL. NUL
// is treated as end-of-line so a single-line comment at the very end of
// the buffer (with no trailing newline) still terminates cleanly.
func IsEndOfLine(ch byte) bool { return ch < 128 && isEndOfLineTable[ch] }
