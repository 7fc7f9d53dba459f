// Package reagent implements a minimal tool-using reasoning loop for LLM agents.
//
// The loop coordinates three collaborators: a [Registry] of callable tools, an
// [Oracle] that produces the next reasoning step as free text, and an [AgentType]
// that pairs a prompt template with a step parser. The [Agent] drives the loop:
// it asks the oracle for the next step, dispatches to a tool when the parsed
// decision requests one, appends the observation to the transcript, and stops
// when a final answer is parsed or the iteration ceiling is reached.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/jfellman/reagent"
//	    "github.com/jfellman/reagent/agents"
//	    "github.com/jfellman/reagent/models"
//	    "github.com/jfellman/reagent/tools"
//	)
//
//	func main() {
//	    // 1. Create an oracle backed by any langchaingo llms.Model.
//	    oracle, err := models.NewGitHubCopilotModel(
//	        "openai/gpt-4.1", os.Getenv("GITHUB_TOKEN"))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    // 2. Create tools.
//	    search, _ := tools.NewSearch()
//	    calc := tools.NewCalculator()
//
//	    // 3. Initialize the agent with the zero-shot agent type.
//	    agent, err := reagent.Initialize(
//	        []reagent.Tool{search, calc},
//	        oracle,
//	        agents.ZeroShotReactDescription,
//	        reagent.WithMaxIterations(10),
//	        reagent.WithVerbose(os.Stderr),
//	    )
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    // 4. Run.
//	    answer, err := agent.Run(context.Background(),
//	        "What is 27 raised to the 0.23 power?")
//	    fmt.Println(answer, err)
//	}
//
// # Error Handling
//
// Every failure mode is fatal to the current run and surfaced as a typed error:
// [ToolNotFoundError], [ToolError], [ParseError], [IterationLimitError],
// [OracleError]. Nothing is retried internally; retry policy belongs to the
// oracle or tool implementations themselves. Use [errors.As] to distinguish
// failure kinds.
//
// # Concurrency
//
// A single run is one synchronous sequence of steps. Multiple runs may execute
// concurrently on the same Agent because each run owns its transcript
// exclusively; the only shared state is the tool registry, which is read-only
// once runs begin.
package reagent
