package agent

import (
	"encoding/json"
	"strings"
)

// ToolCall is a tool invocation decoded from an assistant reply.
type ToolCall struct {
	Tool  string
	Input string
}

// ParseToolCall reports whether an assistant reply is a structured tool
// call, and decodes it if so.
//
// Only a reply that is entirely one JSON object carrying both the "tool"
// and "input" keys counts. Everything else — prose, prose that happens to
// contain braces, malformed JSON, an object missing a key or holding a
// non-string value — is a final answer, not a parse error. Values are taken
// verbatim; Input in particular is not trimmed.
func ParseToolCall(reply string) (ToolCall, bool) {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return ToolCall{}, false
	}

	// Pointer fields distinguish a missing key from an empty string; a
	// non-string value fails the decode, which lands in the same branch.
	var obj struct {
		Tool  *string `json:"tool"`
		Input *string `json:"input"`
	}
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return ToolCall{}, false
	}
	if obj.Tool == nil || obj.Input == nil {
		return ToolCall{}, false
	}
	return ToolCall{Tool: *obj.Tool, Input: *obj.Input}, true
}
