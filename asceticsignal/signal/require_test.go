package signal

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitter struct {
	onStarted Of1[sampleEvent]
	onEnded   Of1[sampleEvent]
	onFailed  Of2[sampleEvent, error]
}

func (e *emitter) signals() []NamedSignal {
	return []NamedSignal{
		Named("onStarted", &e.onStarted),
		Named("onEnded", &e.onEnded),
		Named("onFailed", &e.onFailed),
	}
}

func TestRequire_AllSubscribed(t *testing.T) {
	e := &emitter{}
	e.onStarted.Subscribe(func(sampleEvent) {})
	e.onEnded.Subscribe(func(sampleEvent) {})
	e.onFailed.Subscribe(func(sampleEvent, error) {})
	assert.NoError(t, Require(e.signals()...))
}

func TestRequire_NoSignals(t *testing.T) {
	assert.NoError(t, Require())
}

func TestRequire_ListsMissingInOrder(t *testing.T) {
	e := &emitter{}
	e.onEnded.Subscribe(func(sampleEvent) {})

	err := Require(e.signals()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSubscriber)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	assert.Equal(t, "onStarted: signal: no subscriber", merr.Errors[0].Error())
	assert.Equal(t, "onFailed: signal: no subscriber", merr.Errors[1].Error())
}

func TestRequire_DoesNotChangeSignals(t *testing.T) {
	e := &emitter{}
	_ = Require(e.signals()...)
	assert.False(t, e.onStarted.HasSubscriber())
	assert.False(t, e.onEnded.HasSubscriber())
	assert.False(t, e.onFailed.HasSubscriber())
}

func TestMustRequire(t *testing.T) {
	t.Run("panics when incomplete", func(t *testing.T) {
		e := &emitter{}
		err := recoverError(t, func() { MustRequire(e.signals()...) })
		assert.ErrorIs(t, err, ErrNoSubscriber)
	})

	t.Run("silent when complete", func(t *testing.T) {
		s := New0()
		s.Subscribe(func() {})
		assert.NotPanics(t, func() { MustRequire(Named("s", s)) })
	})
}
