package reagent

import (
	"fmt"
	"sort"
	"sync"
	"text/template"
)

// ToolInfo describes one registered tool for prompt construction.
type ToolInfo struct {
	Name        string
	Description string
}

// PromptData is everything an [AgentType] needs to render the next prompt:
// the question that seeded the run, the tool catalog, and the steps completed
// so far. The steps are what lets the oracle see its previous actions and
// their observations.
type PromptData struct {
	// SystemPrompt is optional additional context from the caller.
	SystemPrompt string

	// Tools is the catalog of registered tools, in registration order.
	Tools []ToolInfo

	// Question is the original user question.
	Question string

	// Steps are the completed action records of the run so far, in order.
	Steps []ActionRecord
}

// AgentType pairs a prompt template with a step parser. The two halves share a
// marker vocabulary: BuildPrompt instructs the oracle which markers to emit,
// and ParseStep recognizes exactly those markers in the oracle's output.
//
// New variants are added by implementing this interface and registering a
// factory with [RegisterAgentType]; the loop driver never changes.
type AgentType interface {
	// Name returns the agent type's identifier, e.g.
	// "zero-shot-react-description".
	Name() string

	// BuildPrompt renders the full prompt for the next oracle call.
	BuildPrompt(data PromptData) (string, error)

	// ParseStep extracts a structured decision from the oracle's latest
	// output. Purely structural recognition against the agent type's marker
	// vocabulary; returns a [ParseError] when no marker is found.
	ParseStep(output string) (*Decision, error)
}

// TemplateCustomizer is implemented by agent types whose prompt template can
// be replaced after construction. [WithPromptTemplate] requires it.
type TemplateCustomizer interface {
	SetTemplate(tmpl *template.Template)
}

var (
	agentTypesMu sync.RWMutex
	agentTypes   = make(map[string]func() AgentType)
)

// RegisterAgentType makes an agent type available to [Initialize] under the
// given name. Typically called from an implementation package's init, so
// importing the package is enough to make its agent types selectable:
//
//	import _ "github.com/jfellman/reagent/agents"
//
// Panics if name is empty, factory is nil, or name is already registered.
func RegisterAgentType(name string, factory func() AgentType) {
	if name == "" {
		panic("reagent: RegisterAgentType with empty name")
	}
	if factory == nil {
		panic("reagent: RegisterAgentType with nil factory")
	}

	agentTypesMu.Lock()
	defer agentTypesMu.Unlock()
	if _, ok := agentTypes[name]; ok {
		panic(fmt.Sprintf("reagent: agent type %q already registered", name))
	}
	agentTypes[name] = factory
}

// AgentTypeNames returns the registered agent type names, sorted.
func AgentTypeNames() []string {
	agentTypesMu.RLock()
	defer agentTypesMu.RUnlock()

	names := make([]string, 0, len(agentTypes))
	for name := range agentTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupAgentType constructs the agent type registered under name.
func lookupAgentType(name string) (AgentType, error) {
	agentTypesMu.RLock()
	factory, ok := agentTypes[name]
	agentTypesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf(
			"unknown agent type %q (did you import the agents package?)", name)
	}
	return factory(), nil
}
