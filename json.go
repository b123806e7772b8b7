package algebra

import (
	"encoding/json"
	"fmt"
)

// Trees serialize to tagged JSON objects:
//
//	{"type":"value","value":2.5}
//	{"type":"variable","name":"x"}
//	{"type":"multiply","children":[...]}
//
// The codec covers the built-in node types; custom node types provide
// their own json.Marshaler if they need to cross this boundary.

type nodeJSON struct {
	Type     string            `json:"type"`
	Value    *float64          `json:"value,omitempty"`
	Name     string            `json:"name,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	f := v.v
	return json.Marshal(nodeJSON{Type: "value", Value: &f})
}

func (s *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Type: "variable", Name: s.name})
}

func (o *Operation) MarshalJSON() ([]byte, error) {
	children := make([]json.RawMessage, len(o.children))
	for i, c := range o.children {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		children[i] = raw
	}
	return json.Marshal(nodeJSON{Type: kindName(o.kind), Children: children})
}

func (eq Equation) MarshalJSON() ([]byte, error) {
	left, err := json.Marshal(eq.Left)
	if err != nil {
		return nil, err
	}
	right, err := json.Marshal(eq.Right)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{"left": left, "right": right})
}

// EncodeJSON serializes an expression tree.
func EncodeJSON(e Expr) ([]byte, error) { return json.Marshal(e) }

// DecodeJSON rebuilds an expression tree from tagged JSON. Operation
// nodes go through NewOperation, so an empty child list fails with
// ErrInvalidArity.
func DecodeJSON(data []byte) (Expr, error) {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Type {
	case "value":
		if raw.Value == nil {
			return nil, fmt.Errorf("algebra: json value node missing \"value\"")
		}
		return Val(*raw.Value), nil
	case "variable":
		if raw.Name == "" {
			return nil, fmt.Errorf("algebra: json variable node missing \"name\"")
		}
		return Var(raw.Name), nil
	case "add", "subtract", "multiply", "divide":
		children := make([]Expr, len(raw.Children))
		for i, cr := range raw.Children {
			c, err := DecodeJSON(cr)
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		return NewOperation(kindFromName(raw.Type), children)
	}
	return nil, fmt.Errorf("algebra: unknown json node type %q", raw.Type)
}

// DecodeEquationJSON rebuilds an equation from {"left":...,"right":...}.
func DecodeEquationJSON(data []byte) (Equation, error) {
	var raw struct {
		Left  json.RawMessage `json:"left"`
		Right json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Equation{}, err
	}
	if raw.Left == nil || raw.Right == nil {
		return Equation{}, fmt.Errorf("algebra: equation json needs \"left\" and \"right\"")
	}
	left, err := DecodeJSON(raw.Left)
	if err != nil {
		return Equation{}, err
	}
	right, err := DecodeJSON(raw.Right)
	if err != nil {
		return Equation{}, err
	}
	return NewEquation(left, right), nil
}

func kindName(k Kind) string {
	switch k {
	case KindAdd:
		return "add"
	case KindSubtract:
		return "subtract"
	case KindMultiply:
		return "multiply"
	}
	return "divide"
}

func kindFromName(name string) Kind {
	switch name {
	case "add":
		return KindAdd
	case "subtract":
		return KindSubtract
	case "multiply":
		return KindMultiply
	}
	return KindDivide
}
