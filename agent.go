package reagent

import (
	"context"
	"fmt"
	"io"
	"text/template"
	"time"
)

// DefaultMaxIterations is the iteration ceiling applied when none is
// configured.
const DefaultMaxIterations = 15

// Request is the structured input for [Agent.Call].
type Request struct {
	// Input is the user question.
	Input string
}

// Result is the structured output of a run. Immutable after return.
type Result struct {
	// Input echoes the question that seeded the run.
	Input string

	// Output is the final answer text.
	Output string

	// IntermediateSteps holds the ordered action records of the run. Only
	// populated when the agent was initialized with
	// [WithReturnIntermediateSteps]; on failure it holds the steps completed
	// before the failure, for diagnostics.
	IntermediateSteps []ActionRecord

	// Transcript is the full ordered history of the run: question, raw
	// reasoning, actions, observations. Always populated on success; on
	// failure it accompanies IntermediateSteps when
	// [WithReturnIntermediateSteps] is set.
	Transcript *Transcript
}

// Agent drives the reasoning loop for one configured tool set, oracle, and
// agent type. Safe for concurrent runs: each run owns its own transcript and
// the agent's own state is read-only after Initialize.
type Agent struct {
	registry       *Registry
	oracle         Oracle
	agentType      AgentType
	systemPrompt   string
	promptTemplate *template.Template
	maxIterations  int
	returnSteps    bool
	verbose        io.Writer
	hooks          HookFirer
}

// Option configures an Agent during Initialize.
type Option func(*Agent)

// WithMaxIterations sets the iteration ceiling. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n >= 1 {
			a.maxIterations = n
		}
	}
}

// WithReturnIntermediateSteps makes results carry the ordered [ActionRecord]
// list, including partial lists on failure paths.
func WithReturnIntermediateSteps() Option {
	return func(a *Agent) {
		a.returnSteps = true
	}
}

// WithVerbose emits the run transcript to the given sink as it is produced.
// Purely observational; has no effect on control flow.
func WithVerbose(w io.Writer) Option {
	return func(a *Agent) {
		a.verbose = w
	}
}

// WithSystemPrompt adds caller context to the prompt template.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

// WithHooks installs a hook firer, typically a [hooks.Registry], to observe
// run lifecycle events.
func WithHooks(h HookFirer) Option {
	return func(a *Agent) {
		a.hooks = h
	}
}

// WithPromptTemplate replaces the agent type's prompt template. The agent type
// must implement [TemplateCustomizer]; Initialize fails otherwise.
func WithPromptTemplate(tmpl *template.Template) Option {
	return func(a *Agent) {
		a.promptTemplate = tmpl
	}
}

// Initialize creates an Agent from an ordered tool list, an oracle, and an
// agent type selected by name.
//
// The agent type must have been registered via [RegisterAgentType]; importing
// the agents package registers the built-in variants. Fails on duplicate tool
// names or an unknown agent type.
func Initialize(
	tools []Tool,
	oracle Oracle,
	agentType string,
	opts ...Option,
) (*Agent, error) {
	if oracle == nil {
		return nil, fmt.Errorf("oracle is required")
	}

	at, err := lookupAgentType(agentType)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, tool := range tools {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}

	agent := &Agent{
		registry:      registry,
		oracle:        oracle,
		agentType:     at,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(agent)
	}

	if agent.promptTemplate != nil {
		customizer, ok := agent.agentType.(TemplateCustomizer)
		if !ok {
			return nil, fmt.Errorf(
				"agent type %q does not support template overrides", agentType)
		}
		customizer.SetTemplate(agent.promptTemplate)
	}
	return agent, nil
}

// Registry returns the agent's tool registry. Read-only once runs begin.
func (a *Agent) Registry() *Registry {
	return a.registry
}

// Run executes the loop for a bare question and returns the bare answer.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	result, err := a.Call(ctx, Request{Input: question})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Call executes the loop for a structured request.
//
// The run terminates with either a Result (final answer parsed) or one of the
// typed errors: [ParseError], [ToolNotFoundError], [ToolError], [OracleError],
// [IterationLimitError]. When the agent was initialized with
// [WithReturnIntermediateSteps], a partial Result carrying the steps completed
// before the failure is returned alongside the error.
func (a *Agent) Call(ctx context.Context, req Request) (*Result, error) {
	run := &runState{
		transcript: NewTranscript(),
		start:      time.Now(),
	}
	run.transcript.Append(TurnQuestion, req.Input)
	a.logf("Question: %s", req.Input)

	if a.hooks != nil {
		a.hooks.FireBeforeRun(BeforeRunEvent{Input: req.Input})
	}

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return a.fail(run, req, err)
		}

		decision, err := a.step(ctx, req, run, iteration)
		if err != nil {
			return a.fail(run, req, err)
		}

		if decision.Kind == DecisionFinalAnswer {
			run.state = StateFinished
			a.fireAfterIteration(iteration, run.state)
			a.logf("Final Answer: %s", decision.Answer)
			return a.finish(run, req, decision.Answer)
		}

		observation, err := a.dispatch(ctx, run, iteration, decision)
		if err != nil {
			return a.fail(run, req, err)
		}

		run.steps = append(run.steps, ActionRecord{
			Log:         decision.Log,
			Tool:        decision.Tool,
			Input:       decision.Input,
			Observation: observation,
		})
		run.state = StateRunning
		a.fireAfterIteration(iteration, run.state)
	}

	return a.fail(run, req, &IterationLimitError{Limit: a.maxIterations})
}

// runState is the per-run mutable state: the transcript, the completed steps,
// and the current loop state. Owned by exactly one Call invocation.
type runState struct {
	transcript *Transcript
	steps      []ActionRecord
	state      State
	start      time.Time
}

// step performs one oracle round trip: build prompt, complete, parse.
func (a *Agent) step(
	ctx context.Context,
	req Request,
	run *runState,
	iteration int,
) (*Decision, error) {
	data := PromptData{
		SystemPrompt: a.systemPrompt,
		Tools:        a.toolInfos(),
		Question:     req.Input,
		Steps:        run.steps,
	}
	prompt, err := a.agentType.BuildPrompt(data)
	if err != nil {
		return nil, fmt.Errorf("build prompt (iteration %d): %w", iteration, err)
	}

	oracleStart := time.Now()
	output, err := a.oracle.Complete(ctx, prompt)
	oracleDuration := time.Since(oracleStart)

	if a.hooks != nil {
		a.hooks.FireAfterOracleCall(AfterOracleCallEvent{
			Iteration: iteration,
			Prompt:    prompt,
			Response:  output,
			Duration:  oracleDuration,
			Err:       err,
		})
	}
	if err != nil {
		return nil, &OracleError{Err: err}
	}

	run.transcript.Append(TurnReasoning, output)
	a.logf("%s", output)

	return a.agentType.ParseStep(output)
}

// dispatch resolves and invokes the tool named by a decision, appending the
// action and observation to the transcript.
func (a *Agent) dispatch(
	ctx context.Context,
	run *runState,
	iteration int,
	decision *Decision,
) (string, error) {
	tool, err := a.registry.Lookup(decision.Tool)
	if err != nil {
		return "", err
	}

	if err := a.registry.ValidateInput(decision.Tool, decision.Input); err != nil {
		return "", &ToolError{Name: decision.Tool, Err: err}
	}

	run.state = StateAwaitingObservation
	run.transcript.Append(
		TurnAction,
		fmt.Sprintf("%s: %s", decision.Tool, decision.Input),
	)

	if a.hooks != nil {
		a.hooks.FireBeforeToolCall(BeforeToolCallEvent{
			Iteration: iteration,
			State:     run.state,
			Tool:      decision.Tool,
			Input:     decision.Input,
		})
	}

	toolStart := time.Now()
	observation, callErr := tool.Call(ctx, decision.Input)
	toolDuration := time.Since(toolStart)

	if a.hooks != nil {
		a.hooks.FireAfterToolCall(AfterToolCallEvent{
			Iteration:   iteration,
			Tool:        decision.Tool,
			Input:       decision.Input,
			Observation: observation,
			Duration:    toolDuration,
			Err:         callErr,
		})
	}
	if callErr != nil {
		return "", &ToolError{Name: decision.Tool, Err: callErr}
	}

	run.transcript.Append(TurnObservation, observation)
	a.logf("Observation: %s", observation)
	return observation, nil
}

// finish completes a successful run.
func (a *Agent) finish(run *runState, req Request, answer string) (*Result, error) {
	result := &Result{
		Input:      req.Input,
		Output:     answer,
		Transcript: run.transcript,
	}
	if a.returnSteps {
		result.IntermediateSteps = run.steps
	}

	if a.hooks != nil {
		a.hooks.FireAfterRun(AfterRunEvent{
			State:    run.state,
			Output:   answer,
			Duration: time.Since(run.start),
		})
	}
	return result, nil
}

// fail completes a failed run, surfacing the partial step list when
// intermediate steps were requested.
func (a *Agent) fail(run *runState, req Request, err error) (*Result, error) {
	run.state = StateFailed
	a.logf("Run failed: %v", err)

	if a.hooks != nil {
		a.hooks.FireAfterRun(AfterRunEvent{
			State:    run.state,
			Err:      err,
			Duration: time.Since(run.start),
		})
	}

	if a.returnSteps {
		return &Result{
			Input:             req.Input,
			IntermediateSteps: run.steps,
			Transcript:        run.transcript,
		}, err
	}
	return nil, err
}

func (a *Agent) fireAfterIteration(iteration int, state State) {
	if a.hooks != nil {
		a.hooks.FireAfterIteration(AfterIterationEvent{
			Iteration: iteration,
			State:     state,
		})
	}
}

// toolInfos snapshots the registry catalog for prompt construction.
func (a *Agent) toolInfos() []ToolInfo {
	tools := a.registry.Tools()
	infos := make([]ToolInfo, len(tools))
	for i, tool := range tools {
		infos[i] = ToolInfo{Name: tool.Name(), Description: tool.Description()}
	}
	return infos
}

// logf writes one line to the verbose sink, if configured.
func (a *Agent) logf(format string, args ...any) {
	if a.verbose == nil {
		return
	}
	fmt.Fprintf(a.verbose, format+"\n", args...)
}
