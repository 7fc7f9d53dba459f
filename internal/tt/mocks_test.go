package tt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedOracle_FailsWhenExhausted(t *testing.T) {
	oracle := NewScriptedOracle().AddResponse("only one")

	out, err := oracle.Complete(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "only one", out)

	_, err = oracle.Complete(context.Background(), "p2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
	assert.Equal(t, 2, oracle.CallCount())
}

func TestScriptedOracle_RepeatLast(t *testing.T) {
	oracle := NewScriptedOracle().
		AddResponse("first").
		AddResponse("second").
		RepeatLast()

	var outputs []string
	for range 4 {
		out, err := oracle.Complete(context.Background(), "p")
		require.NoError(t, err)
		outputs = append(outputs, out)
	}
	assert.Equal(t, []string{"first", "second", "second", "second"}, outputs)
}

func TestScriptedOracle_ErrorsInterleaved(t *testing.T) {
	boom := errors.New("boom")
	oracle := NewScriptedOracle().
		AddResponse("ok").
		AddError(boom)

	out, err := oracle.Complete(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = oracle.Complete(context.Background(), "p2")
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"p1", "p2"}, oracle.CapturedPrompts)
}

func TestScriptedOracle_EmptyScriptFails(t *testing.T) {
	_, err := NewScriptedOracle().Complete(context.Background(), "p")
	require.Error(t, err)
}
