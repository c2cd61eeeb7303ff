package tools

import (
	"context"
	"strings"
	"testing"
)

func TestCalculator_Evaluate(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2*(3+5)", "16"},
		{"(2.5 + 7.5) * 3", "30"},
		{"(2.5+7.5)*3", "30"},
		{"10 / 4", "2.5"},
		{"7 % 3", "1"},
		{"-3 + 1", "-2"},
	}
	tool := NewCalculatorTool()
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			if got := tool.Execute(context.Background(), tc.expr); got != tc.want {
				t.Fatalf("%s = %q, want %q", tc.expr, got, tc.want)
			}
		})
	}
}

func TestCalculator_BadExpression(t *testing.T) {
	tool := NewCalculatorTool()
	for _, expr := range []string{"2 +", "what is life", "(1+2", ""} {
		out := tool.Execute(context.Background(), expr)
		if !strings.HasPrefix(out, "Calculator error:") {
			t.Fatalf("expected error string for %q, got %q", expr, out)
		}
	}
}
