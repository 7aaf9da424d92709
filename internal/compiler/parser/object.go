package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Field is one field of an object type string
type Field struct {
	Name     string
	Type     string
	Required bool
}

type objectState int

const (
	objectStart objectState = iota
	objectBeforeField
	objectBeforeFieldName
	objectBeforeFieldType
	objectBeforeObjectType
	objectBeforePrimitiveType
	objectEnd
	objectDone
)

var fieldNamePattern = regexp.MustCompile(`^(\w+)(\?)?: `)

// ParseObject splits an object type string into its fields, in input order.
//
//	ParseObject("{ foo: string; bar?: { baz: number; }; }")
//	// [{foo string true} {bar "{ baz: number; }" false}]
//
// Any deviation from the expected shape returns a *ParseError.
func ParseObject(typeString string) ([]Field, error) {
	c := &cursor{input: typeString}
	fields := make([]Field, 0)
	var next Field
	state := objectStart

	for state != objectDone {
		switch state {
		case objectStart:
			if typeString == "{}" {
				return fields, nil
			}
			if err := c.expect("{ ", "an opening brace for the start of the object type"); err != nil {
				return nil, err
			}
			state = objectBeforeField

		case objectBeforeField:
			if c.hasPrefix("}") {
				state = objectEnd
			} else {
				state = objectBeforeFieldName
			}

		case objectBeforeFieldName:
			match := fieldNamePattern.FindStringSubmatch(c.rest())
			if match == nil {
				return nil, newParseError(typeString, c.pos, "a field name in the object type")
			}
			next = Field{Name: match[1], Required: match[2] == ""}
			c.pos += len(match[0])
			state = objectBeforeFieldType

		case objectBeforeFieldType:
			if c.hasPrefix("{ ") {
				state = objectBeforeObjectType
			} else {
				state = objectBeforePrimitiveType
			}

		case objectBeforeObjectType:
			expected := fmt.Sprintf("a nested object type for the %s field", next.Name)
			typ, err := c.scanTopLevel("; ", false, expected)
			if err != nil {
				return nil, err
			}
			if !strings.HasSuffix(typ, "}") {
				return nil, newParseError(typeString, c.pos-len(typ), expected)
			}
			if err := c.expect("; ", "a semicolon after the field type"); err != nil {
				return nil, err
			}
			next.Type = typ
			fields = append(fields, next)
			state = objectBeforeField

		case objectBeforePrimitiveType:
			expected := fmt.Sprintf("a primitive type for the %s field", next.Name)
			typ, err := c.scanTopLevel("; ", false, expected)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(typ) == "" {
				return nil, newParseError(typeString, c.pos, expected)
			}
			if err := c.expect("; ", "a semicolon after the field type"); err != nil {
				return nil, err
			}
			next.Type = typ
			fields = append(fields, next)
			state = objectBeforeField

		case objectEnd:
			if c.rest() != "}" {
				return nil, newParseError(typeString, c.pos, "the end of the type string")
			}
			c.pos = len(typeString)
			state = objectDone
		}
	}

	return fields, nil
}
