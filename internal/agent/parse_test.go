package agent

import "testing"

func TestParseToolCall_NotAToolCall(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"plain prose", "The answer is 42."},
		{"prose mentioning braces", `Use {"tool": ...} syntax to call tools.`},
		{"prose before object", `Sure! {"tool":"calculator","input":"1"}`},
		{"prose after object", `{"tool":"calculator","input":"1"} hope that helps`},
		{"missing input key", `{"tool":"calculator"}`},
		{"missing tool key", `{"input":"1+1"}`},
		{"empty object", `{}`},
		{"invalid json", `{"tool": "calculator", "input":}`},
		{"non-string tool", `{"tool": 3, "input": "1"}`},
		{"non-string input", `{"tool":"calculator","input":42}`},
		{"null input", `{"tool":"calculator","input":null}`},
		{"json array", `["tool","input"]`},
		{"empty string", ""},
		{"whitespace only", "  \n\t "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if call, ok := ParseToolCall(tc.reply); ok {
				t.Fatalf("expected not-a-tool-call for %q, got %+v", tc.reply, call)
			}
		})
	}
}

func TestParseToolCall_Valid(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  ToolCall
	}{
		{
			"simple",
			`{"tool":"calculator","input":"(2.5+7.5)*3"}`,
			ToolCall{Tool: "calculator", Input: "(2.5+7.5)*3"},
		},
		{
			"surrounding whitespace trimmed",
			"  \n" + `{"tool":"websearch","input":"golang"}` + "\n ",
			ToolCall{Tool: "websearch", Input: "golang"},
		},
		{
			"input kept verbatim",
			`{"tool":"calculator","input":"  1 + 1  "}`,
			ToolCall{Tool: "calculator", Input: "  1 + 1  "},
		},
		{
			"tool name kept verbatim",
			`{"tool":" Calculator ","input":"1"}`,
			ToolCall{Tool: " Calculator ", Input: "1"},
		},
		{
			"extra keys ignored",
			`{"tool":"wikipedia","input":"Go","thought":"look it up"}`,
			ToolCall{Tool: "wikipedia", Input: "Go"},
		},
		{
			"empty input allowed",
			`{"tool":"websearch","input":""}`,
			ToolCall{Tool: "websearch", Input: ""},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call, ok := ParseToolCall(tc.reply)
			if !ok {
				t.Fatalf("expected tool call for %q", tc.reply)
			}
			if call != tc.want {
				t.Fatalf("got %+v, want %+v", call, tc.want)
			}
		})
	}
}
