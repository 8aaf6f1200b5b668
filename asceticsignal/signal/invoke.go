package signal

import (
	"reflect"

	"github.com/pkg/errors"
)

// Invoke passes the subscriber to call exactly once. It works for any
// callback type, including named func types and arities without a NotifyN.
// Panics with an error wrapping ErrNoSubscriber if the signal is empty.
//
//	signal.Invoke(&s, func(f Handler) { f(ctx, req) })
func Invoke[C any](s *Signal[C], call func(C)) {
	callback, err := subscriber(s)
	if err != nil {
		panic(err)
	}
	call(callback)
}

func TryInvoke[C any](s *Signal[C], call func(C)) error {
	callback, err := subscriber(s)
	if err != nil {
		return err
	}
	call(callback)
	return nil
}

func subscriber[C any](s *Signal[C]) (C, error) {
	callback, ok := s.subscription.Get()
	if !ok {
		return callback, errors.Wrapf(ErrNoSubscriber, "notify %s", reflect.TypeFor[C]())
	}
	return callback, nil
}
