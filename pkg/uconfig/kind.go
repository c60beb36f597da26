package uconfig

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindEnum
	KindList
	KindTuple
	KindMap
	// KindOpaque marks a Go value that has no config representation
	// (functions, channels, arbitrary structs). It never validates.
	KindOpaque
)

// DefaultJSONIndent is the number of spaces used when saving or printing a config.
const DefaultJSONIndent = 2

// AllowedBaseKinds are the scalar kinds a config leaf may hold.
// Enum values are allowed when their primitive kind is one of these.
var AllowedBaseKinds = []Kind{KindBool, KindInt, KindFloat, KindString, KindNull}

// AllowedContainerKinds are the container kinds a constructed config may hold.
// Tuples are accepted by the validator but never survive normalization.
var AllowedContainerKinds = []Kind{KindList, KindMap}

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindMap:
		return "map"
	case KindOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}

// IsBase reports whether k is an allowed scalar kind.
func (k Kind) IsBase() bool {
	for _, allowed := range AllowedBaseKinds {
		if k == allowed {
			return true
		}
	}
	return false
}

// IsSequence reports whether k is an ordered sequence (list or tuple).
func (k Kind) IsSequence() bool {
	return k == KindList || k == KindTuple
}

// allowedKindNames renders the allow-list for error messages.
func allowedKindNames() []string {
	names := make([]string, 0, len(AllowedBaseKinds)+len(AllowedContainerKinds)+1)
	for _, k := range AllowedBaseKinds {
		names = append(names, k.String())
	}
	names = append(names, KindEnum.String())
	for _, k := range AllowedContainerKinds {
		names = append(names, k.String())
	}
	return names
}
