package grammar

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF describes the language in the notation of golang.org/x/exp/ebnf.
// Capitalized productions are the table's non-terminals; lower-case ones
// are the lexical classes behind the terminals.
const EBNF = `
Program          = ExternalDeclList .
ExternalDeclList = [ ExternalDecl ExternalDeclList ] .
ExternalDecl     = type id DeclTail .
DeclTail         = "(" Params ")" Block | OptInit IdListTail ";" .
Params           = [ ParamList ] .
ParamList        = Param ParamListTail .
ParamListTail    = [ "," Param ParamListTail ] .
Param            = type id .
OptInit          = [ "=" Expr ] .
IdListTail       = [ "," id OptInit IdListTail ] .
Block            = "{" StmtList "}" .
StmtList         = [ Stmt StmtList ] .
Stmt             = IfStmt | WhileStmt | DoWhileStmt | ForStmt | ReturnStmt
                 | BreakStmt | ContinueStmt | AssignStmt | Block .
IfStmt           = "if" "(" Expr ")" Stmt ElsePart .
ElsePart         = [ "else" Stmt ] .
WhileStmt        = "while" "(" Expr ")" Stmt .
DoWhileStmt      = "do" Stmt "while" "(" Expr ")" ";" .
ForStmt          = "for" "(" SimpleAssign ";" Expr ";" SimpleAssign ")" Stmt .
SimpleAssign     = id "=" Expr .
ReturnStmt       = "return" Expr ";" .
BreakStmt        = "break" ";" .
ContinueStmt     = "continue" ";" .
AssignStmt       = SimpleAssign ";" .
Expr             = RelExpr LogicTail .
LogicTail        = [ logic_op RelExpr LogicTail ] .
RelExpr          = ArithExpr RelTail .
RelTail          = [ rel_op ArithExpr RelTail ] .
ArithExpr        = Factor ArithTail .
ArithTail        = [ arith_op Factor ArithTail ] .
Factor           = "(" Expr ")" | id | number .

type     = "int" | "float" | "char" | "void" | "double" .
id       = letter { letter | digit } .
number   = digits [ "." { digit } ] [ exponent ] | "." digits [ exponent ] .
digits   = digit { digit } .
exponent = ( "e" | "E" ) [ "+" | "-" ] digits .
arith_op = "+" | "-" | "*" | "/" | "%" .
rel_op   = "==" | "!=" | "<" | "<=" | ">" | ">=" .
logic_op = "&&" | "||" | "!" .
letter   = "a" … "z" | "A" … "Z" | "_" .
digit    = "0" … "9" .
`

// ParseEBNF parses the EBNF description.
func ParseEBNF() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("minic.ebnf", strings.NewReader(EBNF))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// VerifyEBNF parses the EBNF description, verifies it from Program, and
// checks that its non-lexical productions are exactly the non-terminals of
// t.
func VerifyEBNF(t *Table) error {
	g, err := ParseEBNF()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, t.Start().String()); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}

	defined := make(map[string]bool)
	for name := range g {
		r := []rune(name)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			defined[name] = true
		}
	}
	for _, nt := range NonTerminals() {
		if !defined[nt.String()] {
			return fmt.Errorf("verify grammar: no production for %s", nt)
		}
		delete(defined, nt.String())
	}
	for name := range defined {
		return fmt.Errorf("verify grammar: production %s is not a non-terminal", name)
	}
	return nil
}
