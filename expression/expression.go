// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package expression parses the function call syntax shared by all output
// descriptors, `name(arg1,arg2,...)`, into a tree of named nodes.
//
// The parser knows nothing about the meaning of names.  Every argument is
// itself a tree, so `addr(bc1q...)` yields a node named "addr" with a single
// argument node named "bc1q..." that has no arguments of its own.
package expression

import (
	"fmt"
	"strings"
)

// Tree is a node of a parsed expression.
type Tree struct {
	// Name is the text before the opening parenthesis, or the whole token
	// for a node without arguments.
	Name string

	// Args are the comma separated arguments between the parentheses, in
	// order.
	Args []*Tree
}

// IsTerminal returns whether the node has no arguments.
func (t *Tree) IsTerminal() bool {
	return len(t.Args) == 0
}

// String returns the expression the tree was parsed from.
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	sb.WriteString(t.Name)
	if len(t.Args) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		arg.write(sb)
	}
	sb.WriteByte(')')
}

type stack struct {
	elements []*Tree
}

func (s *stack) push(element *Tree) {
	s.elements = append(s.elements, element)
}

func (s *stack) pop() *Tree {
	if len(s.elements) == 0 {
		return nil
	}
	top := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return top
}

func (s *stack) top() *Tree {
	if len(s.elements) == 0 {
		return nil
	}
	return s.elements[len(s.elements)-1]
}

func (s *stack) size() int {
	return len(s.elements)
}

// isSeparator reports whether c delimits tokens.
func isSeparator(c rune) bool {
	return c == '(' || c == ')' || c == ','
}

// splitString splits a string at every separator and keeps the separators as
// individual slice elements.  Empty elements are never produced.
func splitString(s string, isSeparator func(c rune) bool) []string {
	substrings := make([]string, 0)

	i := 0
	for i < len(s) {
		j := strings.IndexFunc(s[i:], isSeparator)
		if j == -1 {
			substrings = append(substrings, s[i:])
			return substrings
		}
		j += i

		if j > i {
			substrings = append(substrings, s[i:j])
		}
		substrings = append(substrings, s[j:j+1])
		i = j + 1
	}
	return substrings
}

// Parse parses an expression into a tree.  The whole string must be consumed
// by exactly one top level node.
func Parse(s string) (*Tree, error) {
	tokens := splitString(s, isSeparator)
	if len(tokens) == 0 {
		return nil, parseError(ErrEmptyExpression, "empty expression")
	}

	first, last := tokens[0], tokens[len(tokens)-1]
	if first == "(" || first == ")" || first == "," ||
		last == "(" || last == "," {

		str := fmt.Sprintf("invalid first or last character in %q", s)
		return nil, parseError(ErrInvalidSequence, str)
	}

	var stack stack
	for i, token := range tokens {
		switch token {
		case "(":
			// Only a name may open an argument list: "((", ")("
			// and ",(" never appear.
			if i > 0 && (tokens[i-1] == "(" || tokens[i-1] == ")" ||
				tokens[i-1] == ",") {

				str := fmt.Sprintf("the sequence %s%s is invalid",
					tokens[i-1], token)
				return nil, parseError(ErrInvalidSequence, str)
			}

		case ",", ")":
			// End of an argument: move it into the argument list
			// of its parent.  Empty arguments ("(,", "()", ",,",
			// ",)") are rejected.
			if i > 0 && (tokens[i-1] == "(" || tokens[i-1] == ",") {
				str := fmt.Sprintf("the sequence %s%s is invalid",
					tokens[i-1], token)
				return nil, parseError(ErrInvalidSequence, str)
			}

			arg := stack.pop()
			parent := stack.top()
			if arg == nil || parent == nil {
				str := fmt.Sprintf("unbalanced %q at token %d",
					token, i)
				return nil, parseError(ErrUnbalanced, str)
			}
			parent.Args = append(parent.Args, arg)

		default:
			if i > 0 && tokens[i-1] == ")" {
				str := fmt.Sprintf("the sequence %s%s is invalid",
					tokens[i-1], token)
				return nil, parseError(ErrInvalidSequence, str)
			}
			stack.push(&Tree{Name: token})
		}
	}

	if stack.size() != 1 {
		str := fmt.Sprintf("unbalanced expression %q", s)
		return nil, parseError(ErrUnbalanced, str)
	}

	return stack.top(), nil
}
