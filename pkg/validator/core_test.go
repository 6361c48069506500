package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uiwkit/pkg/validator"
)

func always(msg string) validator.Func[string] {
	return func(string) error { return validator.New(msg) }
}

func never() validator.Func[string] {
	return func(string) error { return nil }
}

func TestChainFirstMatchWins(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(string) error {
		calls++
		return validator.New("B")
	}

	chain := validator.NewChain(nil, []validator.Func[string]{always("A"), counting})
	for _, v := range []string{"", "x", "anything"} {
		assert.Equal(t, "A", validator.Message(chain.Validate(v)))
	}
	assert.Zero(t, calls, "validators after the first failure must not run")
}

func TestChainBuiltinsBeforeCallers(t *testing.T) {
	t.Parallel()

	chain := validator.NewChain(
		[]validator.Func[string]{never(), always("builtin")},
		[]validator.Func[string]{always("caller")},
	)
	assert.Equal(t, "builtin", validator.Message(chain.Validate("v")))
	assert.Equal(t, 3, chain.Len())

	chain = validator.NewChain(
		[]validator.Func[string]{never()},
		[]validator.Func[string]{never(), always("caller")},
	)
	assert.Equal(t, "caller", validator.Message(chain.Validate("v")))
}

func TestChainAllPass(t *testing.T) {
	t.Parallel()

	chain := validator.NewChain([]validator.Func[string]{never()}, []validator.Func[string]{never(), nil})
	require.NoError(t, chain.Validate("v"))
	assert.Equal(t, "", validator.Message(chain.Validate("v")))

	var empty validator.Chain[string]
	require.NoError(t, empty.Validate("v"))
}

func TestNewChainDoesNotMutateCallerSlice(t *testing.T) {
	t.Parallel()

	callers := make([]validator.Func[string], 1, 4)
	callers[0] = never()

	chain := validator.NewChain([]validator.Func[string]{always("builtin")}, callers)
	_ = chain.Validate("x")
	funcs := chain.Funcs()
	funcs[0] = never()

	assert.Len(t, callers, 1)
	assert.Equal(t, "builtin", validator.Message(chain.Validate("x")))
	assert.Equal(t, 2, chain.Len())
}

func TestMessageAndKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validator.Message(nil))
	assert.Equal(t, validator.Kind(""), validator.KindOf(nil))

	plain := errors.New("plain")
	assert.Equal(t, "plain", validator.Message(plain))
	assert.Equal(t, validator.KindCustom, validator.KindOf(plain))
	assert.False(t, validator.IsValidationError(plain))

	verr := validator.Required(nil)("")
	assert.Equal(t, validator.KindRequired, validator.KindOf(verr))
	assert.True(t, validator.IsValidationError(verr))

	wrapped := &validator.AsyncValidationError{Err: verr}
	assert.Equal(t, "Value is required", validator.Message(wrapped))
	assert.True(t, validator.IsAsyncValidationError(wrapped))
}

func TestMessagesGetAndMerge(t *testing.T) {
	t.Parallel()

	var none validator.Messages
	assert.Equal(t, "fallback", none.Get(validator.KindRequired, "fallback"))

	m := validator.Messages{validator.KindRequired: "Pflichtfeld", validator.KindTooLow: ""}
	assert.Equal(t, "Pflichtfeld", m.Get(validator.KindRequired, "x"))
	assert.Equal(t, "x", m.Get(validator.KindTooLow, "x"))

	merged := m.Merge(validator.Messages{validator.KindTooHigh: "zu hoch", validator.KindRequired: ""})
	assert.Equal(t, "Pflichtfeld", merged[validator.KindRequired])
	assert.Equal(t, "zu hoch", merged[validator.KindTooHigh])
	assert.NotContains(t, m, validator.KindTooHigh)
}
