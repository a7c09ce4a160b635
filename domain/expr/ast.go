package expr

// node is the interface all expression tree nodes implement.
// The tree type is private on purpose: the evaluator only ever walks
// trees produced by this package's own parser, never a general-purpose
// one, so no unsafe construct can be represented in the first place.
type node interface {
	nodeTag()
}

// numberLit is a numeric literal (integer or floating-point).
type numberLit struct {
	value float64
}

// unaryKind enumerates the whitelisted unary operators.
type unaryKind int

const (
	unaryIdentity unaryKind = iota // +x
	unaryNegate                    // -x
)

// unaryExpr applies a sign to its operand.
type unaryExpr struct {
	op      unaryKind
	operand node
}

// binaryKind enumerates the whitelisted binary operators.
type binaryKind int

const (
	binAdd binaryKind = iota
	binSub
	binMul
	binDiv
	binFloorDiv
	binMod
	binPow
)

// binaryExpr applies one of the seven arithmetic operators.
type binaryExpr struct {
	op    binaryKind
	left  node
	right node
}

func (*numberLit) nodeTag()  {}
func (*unaryExpr) nodeTag()  {}
func (*binaryExpr) nodeTag() {}
