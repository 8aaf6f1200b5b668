package signal

import (
	"fmt"
	"reflect"

	"github.com/krew-solutions/ascetic-signal-go/asceticsignal/option"
)

// Signal holds zero or one callback of type C. The zero value is empty and
// ready to use.
type Signal[C any] struct {
	subscription option.Option[C]
}

func New[C any]() *Signal[C] {
	return &Signal[C]{}
}

// Subscribe stores callback, silently discarding any previous subscriber.
func (s *Signal[C]) Subscribe(callback C) {
	s.subscription = option.Some(callback)
}

func (s *Signal[C]) HasSubscriber() bool {
	return s.subscription.IsSome()
}

// Subscription returns a copy of the slot.
func (s *Signal[C]) Subscription() option.Option[C] {
	return s.subscription
}

func (s *Signal[C]) String() string {
	state := "empty"
	if s.HasSubscriber() {
		state = "subscribed"
	}
	return fmt.Sprintf("Signal[%s](%s)", reflect.TypeFor[C](), state)
}
