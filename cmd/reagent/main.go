// Package main provides an interactive CLI for running the reasoning loop
// against real models and tools.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jfellman/reagent"
	_ "github.com/jfellman/reagent/agents" // register built-in agent types
	"github.com/jfellman/reagent/config"
	"github.com/jfellman/reagent/models"
	"github.com/jfellman/reagent/tools"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "",
		"path to a YAML configuration file")
	question := flag.String("q", "",
		"run a single question and exit instead of starting the REPL")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	oracle, err := buildOracle(cfg)
	if err != nil {
		return err
	}

	toolSet, err := buildTools()
	if err != nil {
		return err
	}

	opts := []reagent.Option{
		reagent.WithReturnIntermediateSteps(),
	}
	if cfg.MaxIterations > 0 {
		opts = append(opts, reagent.WithMaxIterations(cfg.MaxIterations))
	}
	if cfg.Verbose {
		opts = append(opts, reagent.WithVerbose(os.Stderr))
	}
	if cfg.SystemPrompt != "" {
		opts = append(opts, reagent.WithSystemPrompt(cfg.SystemPrompt))
	}

	agent, err := reagent.Initialize(toolSet, oracle, cfg.AgentType, opts...)
	if err != nil {
		return err
	}

	if *question != "" {
		return ask(context.Background(), agent, cfg, *question)
	}
	return repl(agent, cfg)
}

// buildOracle selects a model backend from the environment: GitHub Models
// when GITHUB_TOKEN is set, otherwise OpenAI via OPENAI_API_KEY.
func buildOracle(cfg config.Config) (reagent.Oracle, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return models.NewGitHubCopilotModel(cfg.Model, token)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		llm, err := openai.New(
			openai.WithToken(key),
			openai.WithModel(strings.TrimPrefix(cfg.Model, "openai/")),
		)
		if err != nil {
			return nil, fmt.Errorf("create OpenAI client: %w", err)
		}
		return models.NewLCGWrapper(llm).WithModelName(cfg.Model), nil
	}
	return nil, fmt.Errorf(
		"no model credentials: set GITHUB_TOKEN or OPENAI_API_KEY")
}

// buildTools assembles the tool list: the calculator always, search only when
// a SerpApi key is available.
func buildTools() ([]reagent.Tool, error) {
	toolSet := []reagent.Tool{tools.NewCalculator()}

	if os.Getenv("SERPAPI_API_KEY") != "" {
		search, err := tools.NewSearch()
		if err != nil {
			return nil, err
		}
		toolSet = append(toolSet, search)
	} else {
		fmt.Fprintf(os.Stderr,
			"%sSERPAPI_API_KEY not set; Search tool disabled.%s\n",
			colorYellow, colorReset)
	}
	return toolSet, nil
}

func repl(agent *reagent.Agent, cfg config.Config) error {
	fmt.Printf("%sAgent ready%s (model=%s, agent_type=%s, tools=[%s]).\n",
		colorGreen, colorReset,
		cfg.Model, cfg.AgentType,
		strings.Join(agent.Registry().Names(), ", "))
	fmt.Printf("%sType a question, or Ctrl-C to quit.%s\n\n",
		colorDim, colorReset)

	rl, err := readline.New(colorCyan + "> " + colorReset)
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Printf("%sGoodbye!%s\n", colorGreen, colorReset)
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := ask(context.Background(), agent, cfg, line); err != nil {
			fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
		}
	}
}

func ask(
	ctx context.Context,
	agent *reagent.Agent,
	cfg config.Config,
	question string,
) error {
	result, err := agent.Call(ctx, reagent.Request{Input: question})

	if cfg.ReturnIntermediateSteps && result != nil {
		for i, step := range result.IntermediateSteps {
			fmt.Printf("%s[%d] %s(%s) -> %s%s\n",
				colorDim, i+1, step.Tool, step.Input,
				step.Observation, colorReset)
		}
	}
	if err != nil {
		if result != nil && result.Transcript != nil {
			fmt.Printf("%s%s%s\n",
				colorDim, result.Transcript.String(), colorReset)
		}
		return err
	}

	fmt.Printf("%s%s%s\n", colorGreen, result.Output, colorReset)
	return nil
}
