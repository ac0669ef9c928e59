// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"github.com/consensys/go-zirc/pkg/ast"
)

// Parser is a recursive descent parser for the Zirc grammar:
//
//	program   = statement*
//	statement = "public" IDENT
//	          | "private" IDENT
//	          | "const" IDENT "=" NUMBER
//	          | "let" IDENT "=" expr
//	          | "assert" expr "==" expr
//	          | "return" expr
//	expr      = term (("+"|"*") term)*
//	term      = IDENT | NUMBER | "(" expr ")"
//
// Observe that expressions are parsed flat and left associative: "+" and "*"
// bind equally tightly, and parentheses are the only grouping mechanism.
type Parser struct {
	tokens []Token
	index  int
}

// NewParser constructs a parser over a given token sequence, which must be
// terminated by an EOF token.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse a complete source string into a program.
func Parse(input string) (*ast.Program, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	//
	return NewParser(tokens).Parse()
}

// Parse the token sequence into a program.
func (p *Parser) Parse() (*ast.Program, error) {
	var statements []ast.Stmt
	//
	for p.peek().Kind != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		//
		statements = append(statements, stmt)
	}
	//
	return &ast.Program{Statements: statements}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case PUBLIC:
		return p.parseInputStmt(true)
	case PRIVATE:
		return p.parseInputStmt(false)
	case CONST:
		return p.parseConstStmt()
	case LET:
		return p.parseLetStmt()
	case ASSERT:
		return p.parseAssertStmt()
	case RETURN:
		return p.parseReturnStmt()
	}
	//
	token := p.peek()
	//
	return nil, syntaxErrorf(token.Line, token.Column, "expected statement, found %s", token)
}

// "public" IDENT | "private" IDENT
func (p *Parser) parseInputStmt(public bool) (ast.Stmt, error) {
	p.advance()
	//
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	//
	if public {
		return &ast.PublicInput{Name: name}, nil
	}
	//
	return &ast.PrivateInput{Name: name}, nil
}

// "const" IDENT "=" NUMBER
func (p *Parser) parseConstStmt() (ast.Stmt, error) {
	p.advance()
	//
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(EQUALS); err != nil {
		return nil, err
	}
	//
	token := p.peek()
	if token.Kind != NUMBER {
		return nil, syntaxErrorf(token.Line, token.Column, "expected number, found %s", token)
	}
	//
	p.advance()
	//
	return &ast.ConstDecl{Name: name, Value: token.Value}, nil
}

// "let" IDENT "=" expr
func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	p.advance()
	//
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(EQUALS); err != nil {
		return nil, err
	}
	//
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	return &ast.Let{Name: name, Expr: expr}, nil
}

// "assert" expr "==" expr
func (p *Parser) parseAssertStmt() (ast.Stmt, error) {
	p.advance()
	//
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(EQUALS_EQUALS); err != nil {
		return nil, err
	}
	//
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	return &ast.Assert{Left: left, Right: right}, nil
}

// "return" expr
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	p.advance()
	//
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	return &ast.Return{Expr: expr}, nil
}

// expr = term (("+"|"*") term)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	//
	for err == nil {
		var right ast.Expr
		//
		switch p.peek().Kind {
		case PLUS:
			p.advance()
			//
			if right, err = p.parseTerm(); err == nil {
				left = &ast.Add{Left: left, Right: right}
			}
		case STAR:
			p.advance()
			//
			if right, err = p.parseTerm(); err == nil {
				left = &ast.Mul{Left: left, Right: right}
			}
		default:
			return left, nil
		}
	}
	//
	return nil, err
}

// term = IDENT | NUMBER | "(" expr ")"
func (p *Parser) parseTerm() (ast.Expr, error) {
	token := p.peek()
	//
	switch token.Kind {
	case IDENTIFIER:
		p.advance()
		return &ast.Var{Name: token.Text}, nil
	case NUMBER:
		p.advance()
		return &ast.Literal{Value: token.Value}, nil
	case LPAREN:
		p.advance()
		//
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		//
		if err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		//
		return expr, nil
	}
	//
	return nil, syntaxErrorf(token.Line, token.Column, "expected identifier, number or '(', found %s", token)
}

func (p *Parser) peek() Token {
	return p.tokens[p.index]
}

func (p *Parser) advance() {
	if p.index+1 < len(p.tokens) {
		p.index++
	}
}

func (p *Parser) expect(kind TokenKind) error {
	token := p.peek()
	if token.Kind != kind {
		return syntaxErrorf(token.Line, token.Column, "unexpected token %s", token)
	}
	//
	p.advance()
	//
	return nil
}

func (p *Parser) expectIdentifier() (string, error) {
	token := p.peek()
	if token.Kind != IDENTIFIER {
		return "", syntaxErrorf(token.Line, token.Column, "expected identifier, found %s", token)
	}
	//
	p.advance()
	//
	return token.Text, nil
}
