package tools

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
)

// CalculatorTool evaluates arithmetic expressions in-process.
type CalculatorTool struct{}

// NewCalculatorTool creates a new calculator tool.
func NewCalculatorTool() *CalculatorTool {
	return &CalculatorTool{}
}

func (t *CalculatorTool) Name() string {
	return "calculator"
}

func (t *CalculatorTool) Description() string {
	return "Evaluate math expressions, e.g., '2*(3+5)'"
}

func (t *CalculatorTool) Execute(_ context.Context, input string) string {
	out, err := expr.Eval(input, nil)
	if err != nil {
		return fmt.Sprintf("Calculator error: %v", err)
	}
	return fmt.Sprintf("%v", out)
}
