package selector

// Combined is an immutable pair of selector expressions joined by a
// combinator. It exists only to be serialized, text is re-derived from
// the operands on every call.
type Combined struct {
	left  Expr
	op    Combinator
	right Expr
}

// Join wraps two already built expressions (selectors or other combined
// nodes) with a combinator. Operands are never validated or mutated, so
// nesting joins associates exactly as constructed.
func Join(left Expr, op Combinator, right Expr) *Combined {
	return &Combined{left: left, op: op, right: right}
}

// String renders "left op right" with a single space on each side of the
// combinator token. For the descendant combinator the token itself is a
// space, which yields three spaces in a row. That artifact is part of
// the output contract and is kept as is.
func (n *Combined) String() string {
	return n.left.String() + " " + string(n.op) + " " + n.right.String()
}
