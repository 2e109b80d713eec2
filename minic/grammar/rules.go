package grammar

// Default is the parse table for the language. It is built once at package
// initialization and shared by every parse.
var Default = MustBuild(Program, rules, syncs)

var (
	exprStart = []Terminal{LParen, Ident, Number}
	stmtStart = []Terminal{If, While, Do, For, Return, Break, Continue, Ident, LBrace}
)

func body(symbols ...Symbol) []Symbol {
	return symbols
}

func terms(ts ...Terminal) []Terminal {
	return ts
}

var rules = []Rule{
	{Program, body(ExternalDeclList), terms(Type, EOF)},

	{ExternalDeclList, body(ExternalDecl, ExternalDeclList), terms(Type)},
	{ExternalDeclList, nil, terms(EOF)},

	{ExternalDecl, body(Type, Ident, DeclTail), terms(Type)},

	{DeclTail, body(LParen, Params, RParen, Block), terms(LParen)},
	{DeclTail, body(OptInit, IdListTail, Semicolon), terms(Assign, Comma, Semicolon)},

	{Params, body(ParamList), terms(Type)},
	{Params, nil, terms(RParen)},

	{ParamList, body(Param, ParamListTail), terms(Type)},

	{ParamListTail, body(Comma, Param, ParamListTail), terms(Comma)},
	{ParamListTail, nil, terms(RParen)},

	{Param, body(Type, Ident), terms(Type)},

	{OptInit, body(Assign, Expr), terms(Assign)},
	{OptInit, nil, terms(Comma, Semicolon)},

	{IdListTail, body(Comma, Ident, OptInit, IdListTail), terms(Comma)},
	{IdListTail, nil, terms(Semicolon)},

	{Block, body(LBrace, StmtList, RBrace), terms(LBrace)},

	{StmtList, body(Stmt, StmtList), stmtStart},
	{StmtList, nil, terms(RBrace)},

	{Stmt, body(IfStmt), terms(If)},
	{Stmt, body(WhileStmt), terms(While)},
	{Stmt, body(DoWhileStmt), terms(Do)},
	{Stmt, body(ForStmt), terms(For)},
	{Stmt, body(ReturnStmt), terms(Return)},
	{Stmt, body(BreakStmt), terms(Break)},
	{Stmt, body(ContinueStmt), terms(Continue)},
	{Stmt, body(AssignStmt), terms(Ident)},
	{Stmt, body(Block), terms(LBrace)},

	{IfStmt, body(If, LParen, Expr, RParen, Stmt, ElsePart), terms(If)},

	// else binds to the nearest if: the ε entry leaves else out.
	{ElsePart, body(Else, Stmt), terms(Else)},
	{ElsePart, nil, terms(If, While, Do, For, Return, Break, Continue, Ident, LBrace, RBrace)},

	{WhileStmt, body(While, LParen, Expr, RParen, Stmt), terms(While)},

	{DoWhileStmt, body(Do, Stmt, While, LParen, Expr, RParen, Semicolon), terms(Do)},

	{ForStmt, body(For, LParen, SimpleAssign, Semicolon, Expr, Semicolon, SimpleAssign, RParen, Stmt), terms(For)},

	{SimpleAssign, body(Ident, Assign, Expr), terms(Ident)},

	{ReturnStmt, body(Return, Expr, Semicolon), terms(Return)},

	{BreakStmt, body(Break, Semicolon), terms(Break)},

	{ContinueStmt, body(Continue, Semicolon), terms(Continue)},

	{AssignStmt, body(SimpleAssign, Semicolon), terms(Ident)},

	{Expr, body(RelExpr, LogicTail), exprStart},

	{LogicTail, body(LogicOp, RelExpr, LogicTail), terms(LogicOp)},
	{LogicTail, nil, terms(RParen, Semicolon, Comma)},

	{RelExpr, body(ArithExpr, RelTail), exprStart},

	{RelTail, body(RelOp, ArithExpr, RelTail), terms(RelOp)},
	{RelTail, nil, terms(LogicOp, RParen, Semicolon, Comma)},

	{ArithExpr, body(Factor, ArithTail), exprStart},

	{ArithTail, body(ArithOp, Factor, ArithTail), terms(ArithOp)},
	{ArithTail, nil, terms(RelOp, LogicOp, RParen, Semicolon, Comma)},

	{Factor, body(LParen, Expr, RParen), terms(LParen)},
	{Factor, body(Ident), terms(Ident)},
	{Factor, body(Number), terms(Number)},
}

var syncs = []Sync{
	{DeclTail, terms(Type, EOF)},
	{Param, terms(Comma, RParen)},
	{Block, terms(Type, EOF, If, While, Do, For, Return, Break, Continue, Ident, RBrace, Else)},
	{Stmt, terms(RBrace, Else)},
	{SimpleAssign, terms(Semicolon, RParen)},
	{Expr, terms(RParen, Semicolon, Comma)},
	{RelExpr, terms(LogicOp, RParen, Semicolon, Comma)},
	{ArithExpr, terms(RelOp, LogicOp, RParen, Semicolon, Comma)},
	{Factor, terms(ArithOp, RelOp, LogicOp, RParen, Semicolon, Comma)},
}
