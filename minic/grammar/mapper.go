package grammar

import "github.com/DefaultKira/trabalho-lexema/minic/lexer"

var kindTerminals = map[lexer.Kind]Terminal{
	lexer.Type:         Type,
	lexer.Ident:        Ident,
	lexer.IntLiteral:   Number,
	lexer.FloatLiteral: Number,
	lexer.If:           If,
	lexer.Else:         Else,
	lexer.While:        While,
	lexer.Do:           Do,
	lexer.For:          For,
	lexer.Return:       Return,
	lexer.Break:        Break,
	lexer.Continue:     Continue,
	lexer.ArithOp:      ArithOp,
	lexer.RelOp:        RelOp,
	lexer.LogicOp:      LogicOp,
	lexer.EOF:          EOF,
}

// Punctuation is resolved by its text, whatever kind the scanner gave it.
var literalTerminals = map[string]Terminal{
	"=": Assign,
	";": Semicolon,
	",": Comma,
	"(": LParen,
	")": RParen,
	"{": LBrace,
	"}": RBrace,
}

// Map translates a token into the terminal alphabet, by kind first and then
// by literal text. The second result is false for tokens with no terminal
// (lexical noise the scanner has already reported or let through).
func Map(tok lexer.Token) (Terminal, bool) {
	if t, ok := kindTerminals[tok.Kind]; ok {
		return t, true
	}
	if t, ok := literalTerminals[tok.Literal]; ok {
		return t, true
	}
	return 0, false
}
