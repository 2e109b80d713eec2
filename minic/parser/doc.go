// Package parser implements a table-driven LL(1) recognizer with panic-mode
// error recovery.
//
// # Overview
//
// The parser never builds a tree. It drives an explicit stack of grammar
// symbols against a token stream and reports, in a single pass, every
// syntax violation it can find:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Tokens    │────▶│   Mapper    │────▶│   Driver    │────▶ Result
//	│  (lexer)    │     │ (terminals) │     │   (stack)   │
//	└─────────────┘     └─────────────┘     └──────┬──────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │   Table     │
//	                                        │ (grammar)   │
//	                                        └─────────────┘
//
// # Transitions
//
// Each iteration looks at the stack top and the current token and applies
// exactly one transition:
//
//	discard   token maps to no terminal          advance
//	accept    end marker on end of input         stop
//	resync    end marker on any other token      advance, push start symbol
//	match     terminal equals lookahead          pop, advance
//	mismatch  terminal differs from lookahead    pop
//	produce   table selects a production         pop, push body reversed
//	empty     table selects the ε-production     pop
//	sync      table says abandon                 pop
//	default   no entry, non-terminal nullable    pop
//	abandon   no entry, end of input             pop
//	skip      no entry, any other token          advance
//
// Every transition either advances the input or shrinks the stack, with
// produce bounded by the grammar having no left recursion. A step budget
// guards tables that break that property; exhausting it ends the parse with
// a single Stalled diagnostic.
//
// # Diagnostics
//
// Recoverable conditions become Diagnostics and never stop the parse.
// Skip and resync reports are suppressed until the next successful match,
// so a run of junk tokens yields one report instead of one per token.
// A malformed table is not a syntax condition: Parse returns a
// *grammar.TableError and no Result.
//
// # Usage
//
//	toks := lexer.NewLexer(src, "main.mc").All()
//	res, err := parser.Parse(toks)
//	if err != nil {
//	    return err
//	}
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
package parser
