// Package tools provides the built-in tools the agent can call during a
// question, and the registry that dispatches to them by name.
package tools

import "context"

// Tool is a capability the agent can invoke with a single string input.
type Tool interface {
	// Name returns the unique registry key for this tool.
	Name() string
	// Description returns a short usage hint shown to the model.
	Description() string
	// Execute runs the tool. It never returns an error: internal faults are
	// converted into a descriptive result string so the agent loop can feed
	// them back to the model instead of dying.
	Execute(ctx context.Context, input string) string
}

// Defaults returns the built-in tools in their canonical registration order.
func Defaults() []Tool {
	return []Tool{
		NewCalculatorTool(), // in-process arithmetic
		NewWikipediaTool(),  // encyclopedia summaries
		NewWebSearchTool(),  // DuckDuckGo results
	}
}
