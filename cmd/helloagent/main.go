package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/NDNathanRocks/AI-Agents/internal/agent"
	"github.com/NDNathanRocks/AI-Agents/internal/config"
	"github.com/NDNathanRocks/AI-Agents/internal/llm"
	"github.com/NDNathanRocks/AI-Agents/internal/tools"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "helloagent",
		Short: "helloagent — local tool-using chat agent",
		Long: "helloagent answers questions with a local LLM, calling out to a\n" +
			"calculator, Wikipedia and web search when it needs to.",
		RunE: runChat, // bare invocation drops into the REPL
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(setupLogging)

	root.AddCommand(chatCmd(), askCmd(), toolsCmd(), configCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newAgent builds the agent from the on-disk config and the default tools.
func newAgent() (*agent.Agent, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	registry := tools.NewRegistry(tools.Defaults()...)
	return agent.New(provider, registry, cfg.Agent.MaxIters), cfg, nil
}

// ── chat command (REPL) ──

const banner = `# Hello, Agent

Ask a question and I will use my tools when needed. Examples:

- What is the population of Canada plus 20%? Use sources.
- Who is Marie Curie and when did she live?
- Compute (2.5 + 7.5) * 3.
`

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session (default)",
		RunE:  runChat,
	}
}

func runChat(_ *cobra.Command, _ []string) error {
	ag, cfg, err := newAgent()
	if err != nil {
		return err
	}

	render := newRenderer()
	fmt.Println(render(banner))
	fmt.Printf("model: %s — type 'exit' to quit\n\n", cfg.LLM.Model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if word := strings.ToLower(strings.TrimSpace(line)); word == "exit" || word == "quit" {
			break
		}

		start := time.Now()
		answer, err := ag.Chat(context.Background(), line)
		if err != nil {
			// Transport faults end the question, not the session.
			fmt.Fprintf(os.Stderr, "agent error: %v\n\n", err)
			continue
		}
		fmt.Printf("Agent: %s\n", render(answer))
		fmt.Printf("(responded in %.2fs)\n\n", time.Since(start).Seconds())
	}
	return scanner.Err()
}

// newRenderer returns a markdown-to-terminal renderer, or a pass-through
// when glamour cannot initialize (dumb terminals, pipes).
func newRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(s string) string { return s }
	}
	return func(s string) string {
		out, err := r.Render(s)
		if err != nil {
			return s
		}
		return strings.TrimSuffix(out, "\n")
	}
}

// ── ask command ──

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ag, _, err := newAgent()
			if err != nil {
				return err
			}
			answer, err := ag.Chat(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(newRenderer()(answer))
			return nil
		},
	}
}

// ── tools command ──

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Run: func(_ *cobra.Command, _ []string) {
			for _, t := range tools.Defaults() {
				fmt.Printf("%-12s %s\n", t.Name(), t.Description())
			}
		},
	}
}

// ── config command ──

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Printf("# %s\n", config.Path())
			return toml.NewEncoder(os.Stdout).Encode(cfg.Redact())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(config.Path()); err == nil {
				return fmt.Errorf("config already exists at %s", config.Path())
			}
			if err := config.Default().Save(); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.Path())
			return nil
		},
	})
	return cmd
}

// ── version command ──

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("helloagent %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
