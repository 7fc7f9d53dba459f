package agents

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfellman/reagent"
)

func TestZeroShot_ParseStep(t *testing.T) {
	type expected struct {
		kind   reagent.DecisionKind
		log    string
		tool   string
		input  string
		answer string
		errHas string
	}

	tests := []struct {
		name     string
		output   string
		expected expected
	}{
		{
			name: "tool call",
			output: "I should search for this.\n" +
				"Action: Search\n" +
				"Action Input: population of France",
			expected: expected{
				kind:  reagent.DecisionToolCall,
				log:   "I should search for this.",
				tool:  "Search",
				input: "population of France",
			},
		},
		{
			name: "multi-line action input",
			output: "Time to calculate.\n" +
				"Action: Calculator\n" +
				"Action Input: 2 +\n2 +\n2",
			expected: expected{
				kind:  reagent.DecisionToolCall,
				log:   "Time to calculate.",
				tool:  "Calculator",
				input: "2 +\n2 +\n2",
			},
		},
		{
			name: "quoted action input is unwrapped",
			output: "Searching.\n" +
				"Action: Search\n" +
				"Action Input: \"exact phrase\"",
			expected: expected{
				kind:  reagent.DecisionToolCall,
				log:   "Searching.",
				tool:  "Search",
				input: "exact phrase",
			},
		},
		{
			name:   "final answer",
			output: "I now know the final answer.\nFinal Answer: 42",
			expected: expected{
				kind:   reagent.DecisionFinalAnswer,
				log:    "I now know the final answer.",
				answer: "42",
			},
		},
		{
			name:   "multi-line final answer",
			output: "Done.\nFinal Answer: first line\nsecond line",
			expected: expected{
				kind:   reagent.DecisionFinalAnswer,
				log:    "Done.",
				answer: "first line\nsecond line",
			},
		},
		{
			name: "final answer before action wins",
			output: "Final Answer: done\n" +
				"Action: Search\n" +
				"Action Input: leftover",
			expected: expected{
				kind:   reagent.DecisionFinalAnswer,
				answer: "done\nAction: Search\nAction Input: leftover",
			},
		},
		{
			name: "action before final answer wins",
			output: "Thinking.\n" +
				"Action: Search\n" +
				"Action Input: x\n" +
				"Final Answer: premature",
			expected: expected{
				kind:  reagent.DecisionToolCall,
				log:   "Thinking.",
				tool:  "Search",
				input: "x\nFinal Answer: premature",
			},
		},
		{
			name:     "no markers",
			output:   "I am not following the format at all.",
			expected: expected{errHas: "neither"},
		},
		{
			name:     "action without input",
			output:   "Hmm.\nAction: Search\nbut then I trailed off",
			expected: expected{errHas: "without a following"},
		},
		{
			name:     "empty tool name",
			output:   "Hmm.\nAction:\nAction Input: x",
			expected: expected{errHas: "empty tool name"},
		},
	}

	zeroShot := NewZeroShot()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := zeroShot.ParseStep(tc.output)

			if tc.expected.errHas != "" {
				require.Error(t, err)
				var parseErr *reagent.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, tc.expected.errHas)
				assert.Equal(t, tc.output, parseErr.Output)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected.kind, decision.Kind)
			assert.Equal(t, tc.expected.log, decision.Log)
			assert.Equal(t, tc.expected.tool, decision.Tool)
			assert.Equal(t, tc.expected.input, decision.Input)
			assert.Equal(t, tc.expected.answer, decision.Answer)
		})
	}
}

func TestZeroShot_BuildPrompt(t *testing.T) {
	data := reagent.PromptData{
		Tools: []reagent.ToolInfo{
			{Name: "Search", Description: "a search engine"},
			{Name: "Calculator", Description: "does math"},
		},
		Question: "How tall is the Eiffel Tower?",
	}

	prompt, err := NewZeroShot().BuildPrompt(data)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Search: a search engine")
	assert.Contains(t, prompt, "Calculator: does math")
	assert.Contains(t, prompt, "should be one of [Search, Calculator]")
	assert.Contains(t, prompt, "Question: How tall is the Eiffel Tower?")
	assert.True(t, strings.HasSuffix(prompt, "Thought:"))
}

func TestZeroShot_BuildPromptWithSystemPrompt(t *testing.T) {
	data := reagent.PromptData{
		SystemPrompt: "You are terse.",
		Question:     "q",
	}

	prompt, err := NewZeroShot().BuildPrompt(data)
	require.NoError(t, err)
	assert.Contains(t, prompt,
		"Answer the following questions as best you can. You are terse.")
}

func TestZeroShot_BuildPromptScratchpad(t *testing.T) {
	data := reagent.PromptData{
		Tools:    []reagent.ToolInfo{{Name: "Search", Description: "s"}},
		Question: "q",
		Steps: []reagent.ActionRecord{
			{
				Log:         "First thought.",
				Tool:        "Search",
				Input:       "alpha",
				Observation: "one",
			},
			{
				Log:         "Second thought.",
				Tool:        "Search",
				Input:       "beta",
				Observation: "two",
			},
		},
	}

	prompt, err := NewZeroShot().BuildPrompt(data)
	require.NoError(t, err)

	want := "Thought: First thought.\n" +
		"Action: Search\n" +
		"Action Input: alpha\n" +
		"Observation: one\n" +
		"Thought: Second thought.\n" +
		"Action: Search\n" +
		"Action Input: beta\n" +
		"Observation: two\n" +
		"Thought:"
	assert.True(t, strings.HasSuffix(prompt, want),
		"prompt should end with the rendered scratchpad, got:\n%s", prompt)
}

func TestZeroShot_WithTemplate(t *testing.T) {
	tmpl := template.Must(template.New("custom").Parse(
		"TOOLS={{.ToolNames}} Q={{.Question}}{{.Scratchpad}}"))

	data := reagent.PromptData{
		Tools:    []reagent.ToolInfo{{Name: "A"}, {Name: "B"}},
		Question: "why?",
	}

	prompt, err := NewZeroShot().WithTemplate(tmpl).BuildPrompt(data)
	require.NoError(t, err)
	assert.Equal(t, "TOOLS=A, B Q=why?", prompt)
}

func TestZeroShot_RegisteredByImport(t *testing.T) {
	assert.Contains(t, reagent.AgentTypeNames(), ZeroShotReactDescription)
	assert.Equal(t, ZeroShotReactDescription, NewZeroShot().Name())
}
