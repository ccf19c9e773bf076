package freq

// englishReference is a percentage table for typical English prose.
// Letter weights follow the usual large-corpus letter frequencies,
// split roughly 70/3 between lowercase and uppercase, with space,
// newline, punctuation, and digits weighted to prose-like levels.
//
// The tail of rare printable characters carries a deliberately tiny
// weight: a candidate decoding in which such a character is common
// scores (candidate - reference)^2 / reference with a near-zero
// denominator, which is exactly the behavior a real corpus exhibits
// for its rarest characters. Without the tail, garbage decodings are
// penalized far too gently.
var englishReference = Table{
	' ':  16.9453,
	'\n': 1.5886,
	'a':  6.0547,
	'b':  1.1061,
	'c':  2.0625,
	'd':  3.1530,
	'e':  9.4167,
	'f':  1.6517,
	'g':  1.4938,
	'h':  4.5178,
	'i':  5.1643,
	'j':  0.1134,
	'k':  0.5723,
	'l':  2.9840,
	'm':  1.7837,
	'n':  5.0034,
	'o':  5.5654,
	'p':  1.4301,
	'q':  0.0704,
	'r':  4.4385,
	's':  4.6906,
	't':  6.7137,
	'u':  2.0447,
	'v':  0.7250,
	'w':  1.7496,
	'x':  0.1112,
	'y':  1.4634,
	'z':  0.0549,
	'A':  0.2595,
	'B':  0.0474,
	'C':  0.0884,
	'D':  0.1351,
	'E':  0.4036,
	'F':  0.0708,
	'G':  0.0640,
	'H':  0.1936,
	'I':  0.2213,
	'J':  0.0049,
	'K':  0.0245,
	'L':  0.1279,
	'M':  0.0764,
	'N':  0.2144,
	'O':  0.2385,
	'P':  0.0613,
	'Q':  0.0030,
	'R':  0.1902,
	'S':  0.2010,
	'T':  0.2877,
	'U':  0.0876,
	'V':  0.0311,
	'W':  0.0750,
	'X':  0.0048,
	'Y':  0.0627,
	'Z':  0.0024,
	'.':  0.9532,
	',':  1.0591,
	'\'': 0.5295,
	'"':  0.3177,
	'-':  0.2648,
	';':  0.0847,
	':':  0.0741,
	'!':  0.0741,
	'?':  0.0635,
	'0':  0.0635,
	'1':  0.0635,
	'2':  0.0635,
	'3':  0.0635,
	'4':  0.0635,
	'5':  0.0635,
	'6':  0.0635,
	'7':  0.0635,
	'8':  0.0635,
	'9':  0.0635,
	'#':  0.0042,
	'$':  0.0042,
	'%':  0.0042,
	'&':  0.0042,
	'*':  0.0042,
	'+':  0.0042,
	'/':  0.0042,
	'<':  0.0042,
	'=':  0.0042,
	'>':  0.0042,
	'@':  0.0042,
	'[':  0.0042,
	'\\': 0.0042,
	']':  0.0042,
	'^':  0.0042,
	'_':  0.0042,
	'`':  0.0042,
	'{':  0.0042,
	'|':  0.0042,
	'}':  0.0042,
	'~':  0.0042,
	'(':  0.0042,
	')':  0.0042,
}

// EnglishReference returns the built-in English reference table.
// It is used whenever no corpus file is supplied.
//
// The returned table is shared; callers must treat it as read-only.
func EnglishReference() Table {
	return englishReference
}
