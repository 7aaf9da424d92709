package parser

import (
	"strings"
)

// Member is one member of a union type string
type Member struct {
	Type string
}

type unionState int

const (
	unionBeforeMember unionState = iota
	unionBeforeObjectMember
	unionBeforePrimitiveMember
	unionAfterMember
	unionDone
)

const unionDelimiter = " | "

// ParseUnion splits a union type string into its members, in input order.
//
//	ParseUnion(`boolean | string[] | { foo: string; }`)
//	// [{boolean} {string[]} {"{ foo: string; }"}]
//
// Duplicates and "undefined" members are preserved; filtering them is the
// caller's concern. A string without a top-level delimiter yields one member.
func ParseUnion(typeString string) ([]Member, error) {
	c := &cursor{input: typeString}
	members := make([]Member, 0)
	state := unionBeforeMember

	for state != unionDone {
		switch state {
		case unionBeforeMember:
			if c.hasPrefix("{ ") {
				state = unionBeforeObjectMember
			} else {
				state = unionBeforePrimitiveMember
			}

		case unionBeforeObjectMember:
			typ, err := c.scanTopLevel(unionDelimiter, true, "a union member object type")
			if err != nil {
				return nil, err
			}
			if !strings.HasSuffix(typ, "}") {
				return nil, newParseError(typeString, c.pos-len(typ), "a union member object type")
			}
			members = append(members, Member{Type: typ})
			state = unionAfterMember

		case unionBeforePrimitiveMember:
			typ, err := c.scanTopLevel(unionDelimiter, true, "a primitive member type")
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(typ) == "" {
				return nil, newParseError(typeString, c.pos, "a primitive member type")
			}
			members = append(members, Member{Type: typ})
			state = unionAfterMember

		case unionAfterMember:
			if c.atEnd() {
				state = unionDone
				continue
			}
			if err := c.expect(unionDelimiter, `a "|" delimiter between union members`); err != nil {
				return nil, err
			}
			state = unionBeforeMember
		}
	}

	return members, nil
}
