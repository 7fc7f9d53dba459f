package tools

import (
	"context"
	"strings"

	lctools "github.com/tmc/langchaingo/tools"

	"github.com/jfellman/reagent"
)

// calculatorDescription tells the oracle the expected expression syntax.
// The underlying evaluator is Starlark, so exponentiation is "**", not "^".
const calculatorDescription = "Useful for getting the result of a math " +
	"expression. The input should be a valid mathematical expression in " +
	"Python syntax (use ** for exponentiation)."

// Calculator evaluates math expressions.
type Calculator struct {
	inner lctools.Calculator
}

// NewCalculator creates a Calculator tool.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Name returns "Calculator".
func (c *Calculator) Name() string {
	return "Calculator"
}

// Description returns the tool description for the LLM.
func (c *Calculator) Description() string {
	return calculatorDescription
}

// Call evaluates the expression and returns the result as text.
func (c *Calculator) Call(ctx context.Context, input string) (string, error) {
	result, err := c.inner.Call(ctx, strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Compile-time check that Calculator implements reagent.Tool.
var _ reagent.Tool = (*Calculator)(nil)
