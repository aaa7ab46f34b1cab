package types

// Token is the unit handed from the tokenizer to the formatters.
// Exactly one of Text or Group is populated: Text is already-rendered
// operand text, Group is a parenthesized sub-predicate. Keywords are
// stored lower-case; formatters canonicalize them through the keyword
// table.
type Token struct {
	Keyword string
	Text    string
	Group   []Token
}
