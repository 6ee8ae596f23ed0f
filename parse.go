package calculator

// ConvertToRPN reorders infix tokens into postfix order with the
// shunting-yard algorithm. It never fails; malformed input produces a
// sequence which EvaluateRPN rejects.
//
// An operator pops every operator on the stack with equal or higher priority
// before it is pushed, so all operators are left associative. Close brackets
// with no open bracket pop the whole stack, and open brackets left on the
// stack at the end are discarded. Tokens of kind TokenNone are ignored.
func (c *Calculator) ConvertToRPN(infix Tokens) Tokens {
	out := make(Tokens, 0, len(infix))
	var stack Tokens
	for _, tok := range infix {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			p := c.priority(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || c.priority(top) < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind == TokenOp {
			out = append(out, stack[i])
		}
	}
	return out
}

// priority gets the priority of an operator token. Operators not in the
// table have priority 0, so they bind less tightly than any known operator.
func (c *Calculator) priority(tok Token) int {
	p, _ := c.ops.Priority(tok.op())
	return p
}
