package expr

// parser is a recursive-descent parser over the token stream.
//
// Grammar:
//
//	expr    := term (('+'|'-') term)*
//	term    := factor (('*'|'/'|'//'|'%') factor)*
//	factor  := ('+'|'-')* power
//	power   := primary ('**' factor)?
//	primary := number | '(' expr ')'
//
// Power is right-associative and binds tighter than a unary sign on its
// left, while its exponent may itself carry a sign: -2**2 is -(2**2)
// and 2**-3 is valid.
type parser struct {
	tokens []token
	pos    int
}

// parse builds the expression tree for the given trimmed input.
func parse(input string) (node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	if p.peek().kind == tokEOF {
		return nil, syntaxErrorf(0, "empty expression")
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, syntaxErrorf(tok.pos, "unexpected %s", tok.kind)
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryKind
		switch p.peek().kind {
		case tokPlus:
			op = binAdd
		case tokMinus:
			op = binSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryKind
		switch p.peek().kind {
		case tokStar:
			op = binMul
		case tokSlash:
			op = binDiv
		case tokSlashSlash:
			op = binFloorDiv
		case tokPercent:
			op = binMod
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) parseFactor() (node, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: unaryIdentity, operand: operand}, nil
	case tokMinus:
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: unaryNegate, operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokStarStar {
		return base, nil
	}
	p.next()
	// The exponent is parsed at factor level: right-associative, and a
	// signed exponent like 2**-3 stays legal.
	exponent, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &binaryExpr{op: binPow, left: base, right: exponent}, nil
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return &numberLit{value: tok.value}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, syntaxErrorf(closing.pos, "expected ')', got %s", closing.kind)
		}
		return inner, nil
	case tokEOF:
		return nil, syntaxErrorf(tok.pos, "unexpected end of expression")
	default:
		return nil, syntaxErrorf(tok.pos, "unexpected %s", tok.kind)
	}
}
