package ast

// Operator identifies a binary operator. The parser records which operator
// appeared but assigns no relative precedence among them; a chain folds
// rightward and a later pass may reassociate.
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpStar
	OpSlash
	OpDoubleSlash
	OpPercent
	OpDoublePercent
	OpCaret
	OpGreaterThan
	OpLessThan
	OpGreaterThanOrEq
	OpLessThanOrEq
	OpEquals
	OpNotEquals
	OpAnd
	OpOr
	OpPizza

	// The three below never appear in a BinOp node. The operator chain
	// engine intercepts them and rewrites the accumulated expression into
	// a definition or backpassing form instead.
	OpAssign
	OpHasType
	OpBackpass
)

var operatorText = [...]string{
	OpPlus:            "+",
	OpMinus:           "-",
	OpStar:            "*",
	OpSlash:           "/",
	OpDoubleSlash:     "//",
	OpPercent:         "%",
	OpDoublePercent:   "%%",
	OpCaret:           "^",
	OpGreaterThan:     ">",
	OpLessThan:        "<",
	OpGreaterThanOrEq: ">=",
	OpLessThanOrEq:    "<=",
	OpEquals:          "==",
	OpNotEquals:       "!=",
	OpAnd:             "&&",
	OpOr:              "||",
	OpPizza:           "|>",
	OpAssign:          "=",
	OpHasType:         ":",
	OpBackpass:        "<-",
}

// String returns the operator's source text.
func (op Operator) String() string {
	if int(op) < len(operatorText) {
		return operatorText[op]
	}
	return "?"
}

// UnaryOperator identifies a prefix operator.
type UnaryOperator int

const (
	// UnaryNegate is `-` applied without a gap to its operand.
	UnaryNegate UnaryOperator = iota
	// UnaryNot is `!`.
	UnaryNot
)

// String returns the unary operator's source text.
func (op UnaryOperator) String() string {
	if op == UnaryNot {
		return "!"
	}
	return "-"
}

// CallStyle records how a function application was written.
type CallStyle int

const (
	// CalledViaSpace is plain juxtaposition, `f x y`.
	CalledViaSpace CallStyle = iota
	// CalledViaBinOp marks an application synthesized from an operator,
	// such as the function position of a pizza chain rewrite.
	CalledViaBinOp
)
