package agents

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jfellman/reagent"
)

// ZeroShotReactDescription is the name of the zero-shot agent type: the agent
// selects tools purely from their descriptions, with no examples in the
// prompt.
const ZeroShotReactDescription = "zero-shot-react-description"

// Marker vocabulary shared between the zero-shot prompt template and parser.
// The template instructs the oracle to emit these exact labels; the parser
// recognizes nothing else.
const (
	actionMarker      = "Action:"
	actionInputMarker = "Action Input:"
	finalAnswerMarker = "Final Answer:"
)

//go:embed zero_shot.tmpl
var zeroShotTemplateContent string

// DefaultZeroShotTemplate is the default prompt template for the zero-shot
// agent type. It lists the tool catalog and explains the
// Thought/Action/Action Input/Observation format.
//
// The template file is located at agents/zero_shot.tmpl. Replace it per agent
// via [ZeroShot.WithTemplate].
var DefaultZeroShotTemplate = template.Must(
	template.New("zero_shot").Parse(zeroShotTemplateContent),
)

func init() {
	reagent.RegisterAgentType(ZeroShotReactDescription, func() reagent.AgentType {
		return NewZeroShot()
	})
}

// ZeroShot implements [reagent.AgentType] with the classic single-tool-call
// ReAct vocabulary: the oracle emits either an "Action:" / "Action Input:"
// pair to request a tool, or a "Final Answer:" declaration to terminate.
type ZeroShot struct {
	template *template.Template
}

// NewZeroShot creates a ZeroShot agent type with the default template.
func NewZeroShot() *ZeroShot {
	return &ZeroShot{template: DefaultZeroShotTemplate}
}

// WithTemplate replaces the prompt template. The template receives
// SystemPrompt, Tools, ToolNames, Question and Scratchpad fields.
func (z *ZeroShot) WithTemplate(tmpl *template.Template) *ZeroShot {
	z.template = tmpl
	return z
}

// SetTemplate implements [reagent.TemplateCustomizer] so the template can be
// swapped through [reagent.WithPromptTemplate].
func (z *ZeroShot) SetTemplate(tmpl *template.Template) {
	z.template = tmpl
}

// Name returns "zero-shot-react-description".
func (z *ZeroShot) Name() string {
	return ZeroShotReactDescription
}

// zeroShotPromptData is the data passed to the zero-shot template.
type zeroShotPromptData struct {
	SystemPrompt string
	Tools        []reagent.ToolInfo
	ToolNames    string
	Question     string
	Scratchpad   string
}

// BuildPrompt renders the full prompt: tool catalog, format instructions, the
// question, and the scratchpad reconstructing every prior action and
// observation in order.
func (z *ZeroShot) BuildPrompt(data reagent.PromptData) (string, error) {
	names := make([]string, len(data.Tools))
	for i, tool := range data.Tools {
		names[i] = tool.Name
	}

	tmplData := zeroShotPromptData{
		SystemPrompt: data.SystemPrompt,
		Tools:        data.Tools,
		ToolNames:    strings.Join(names, ", "),
		Question:     data.Question,
		Scratchpad:   renderScratchpad(data.Steps),
	}

	var buf bytes.Buffer
	if err := z.template.Execute(&buf, tmplData); err != nil {
		return "", fmt.Errorf("execute zero-shot template: %w", err)
	}
	return buf.String(), nil
}

// renderScratchpad rebuilds the Thought/Action/Action Input/Observation blocks
// from completed steps. The rendering follows the prompt's trailing "Thought:"
// cue, so each step's log continues that line and the block ends with a fresh
// "Thought:" for the oracle to continue.
func renderScratchpad(steps []reagent.ActionRecord) string {
	if len(steps) == 0 {
		return ""
	}

	var b strings.Builder
	for _, step := range steps {
		b.WriteString(" ")
		b.WriteString(step.Log)
		b.WriteString("\n")
		b.WriteString(actionMarker)
		b.WriteString(" ")
		b.WriteString(step.Tool)
		b.WriteString("\n")
		b.WriteString(actionInputMarker)
		b.WriteString(" ")
		b.WriteString(step.Input)
		b.WriteString("\nObservation: ")
		b.WriteString(step.Observation)
		b.WriteString("\nThought:")
	}
	return b.String()
}

// ParseStep extracts a decision by scanning for the first recognized marker.
//
// A "Final Answer:" appearing before any "Action:" is terminal; otherwise an
// "Action:" / "Action Input:" pair requests a tool call. Text containing
// neither marker, or an action without an input, yields a
// [reagent.ParseError]. Recognition is purely structural; the content is never
// interpreted.
func (z *ZeroShot) ParseStep(output string) (*reagent.Decision, error) {
	finalIdx := strings.Index(output, finalAnswerMarker)
	actionIdx := strings.Index(output, actionMarker)

	if finalIdx >= 0 && (actionIdx < 0 || finalIdx < actionIdx) {
		return &reagent.Decision{
			Kind:   reagent.DecisionFinalAnswer,
			Log:    strings.TrimSpace(output[:finalIdx]),
			Answer: strings.TrimSpace(output[finalIdx+len(finalAnswerMarker):]),
		}, nil
	}

	if actionIdx < 0 {
		return nil, &reagent.ParseError{
			Output: output,
			Reason: fmt.Sprintf(
				"output contains neither %q nor %q",
				actionMarker, finalAnswerMarker),
		}
	}

	rest := output[actionIdx+len(actionMarker):]
	inputIdx := strings.Index(rest, actionInputMarker)
	if inputIdx < 0 {
		return nil, &reagent.ParseError{
			Output: output,
			Reason: fmt.Sprintf(
				"%q marker without a following %q",
				actionMarker, actionInputMarker),
		}
	}

	tool := strings.TrimSpace(rest[:inputIdx])
	if tool == "" {
		return nil, &reagent.ParseError{
			Output: output,
			Reason: "empty tool name after " + actionMarker,
		}
	}

	input := rest[inputIdx+len(actionInputMarker):]
	input = strings.Trim(strings.TrimSpace(input), `"`)

	return &reagent.Decision{
		Kind:  reagent.DecisionToolCall,
		Log:   strings.TrimSpace(output[:actionIdx]),
		Tool:  tool,
		Input: input,
	}, nil
}

// Compile-time checks.
var (
	_ reagent.AgentType          = (*ZeroShot)(nil)
	_ reagent.TemplateCustomizer = (*ZeroShot)(nil)
)
