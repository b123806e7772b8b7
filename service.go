package algebra

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Tool layer — transport-neutral request handling
// ============================================================

// ToolRequest names a tool and carries its parameters. Expressions and
// equations arrive as infix strings and go through Parse.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries the result of a tool call. Error is set instead
// of the other fields when the call failed.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleTool executes one tool call. Tools:
//
//	solve     params: equation, variable     -> isolated equation
//	render    params: expression             -> canonical infix form
//	eval      params: expression             -> numeric value
//	simplify  params: expression             -> folded expression
//	latex     params: expression             -> LaTeX form
//	variables params: expression             -> distinct variable names
func HandleTool(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getExpr := func() (Expr, error) {
		s, err := getString("expression")
		if err != nil {
			return nil, err
		}
		return Parse(s)
	}
	fail := func(err error) ToolResponse {
		return ToolResponse{Error: err.Error()}
	}
	respond := func(e Expr) ToolResponse {
		tree, _ := EncodeJSON(e)
		return ToolResponse{Result: json.RawMessage(tree), String: e.Render(), LaTeX: LaTeX(e)}
	}

	switch req.Tool {
	case "solve":
		eqStr, err := getString("equation")
		if err != nil {
			return fail(err)
		}
		name, err := getString("variable")
		if err != nil {
			return fail(err)
		}
		eq, err := ParseEquation(eqStr)
		if err != nil {
			return fail(err)
		}
		solved, err := Solve(eq, name)
		if err != nil {
			return fail(err)
		}
		tree, _ := json.Marshal(solved)
		return ToolResponse{Result: json.RawMessage(tree), String: solved.Render(), LaTeX: solved.LaTeX()}

	case "render":
		e, err := getExpr()
		if err != nil {
			return fail(err)
		}
		return respond(e)

	case "eval":
		e, err := getExpr()
		if err != nil {
			return fail(err)
		}
		v, err := Evaluate(e)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: v, String: formatFloat(v)}

	case "simplify":
		e, err := getExpr()
		if err != nil {
			return fail(err)
		}
		return respond(Simplify(e))

	case "latex":
		e, err := getExpr()
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: LaTeX(e), String: e.Render(), LaTeX: LaTeX(e)}

	case "variables":
		e, err := getExpr()
		if err != nil {
			return fail(err)
		}
		names := Variables(e)
		return ToolResponse{Result: names}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}
