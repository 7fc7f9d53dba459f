// Package agents provides the built-in agent types: prompt template and step
// parser pairs sharing a marker vocabulary.
//
// Importing this package registers every built-in agent type with the root
// package, so their names become selectable in [reagent.Initialize]:
//
//	import _ "github.com/jfellman/reagent/agents"
//
//	agent, err := reagent.Initialize(
//	    tools, oracle, agents.ZeroShotReactDescription)
//
// Custom agent types implement [reagent.AgentType] and register themselves
// with [reagent.RegisterAgentType]; the loop driver needs no changes.
package agents
