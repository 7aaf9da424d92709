package proptype

// Kind identifies the category a type string was classified into
type Kind int

const (
	KindUnsupported Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindAnyObject
	KindEnum
	KindFixedObject
	KindArray
	KindUnion
)

var kindNames = map[Kind]string{
	KindUnsupported: "unsupported",
	KindBoolean:     "boolean",
	KindNumber:      "number",
	KindString:      "string",
	KindAnyObject:   "object",
	KindEnum:        "enum",
	KindFixedObject: "fixed object",
	KindArray:       "array",
	KindUnion:       "union",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
