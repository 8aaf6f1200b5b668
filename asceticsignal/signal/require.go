package signal

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type Subscribable interface {
	HasSubscriber() bool
}

var _ Subscribable = (*Signal[func()])(nil)

type NamedSignal struct {
	Name   string
	Signal Subscribable
}

func Named(name string, s Subscribable) NamedSignal {
	return NamedSignal{Name: name, Signal: s}
}

// Require checks that every signal has a subscriber. Emitters call it once
// their wiring is done so a missing subscriber shows up before the first
// notification. The result lists each empty signal in argument order.
func Require(signals ...NamedSignal) error {
	var result *multierror.Error
	for _, ns := range signals {
		if !ns.Signal.HasSubscriber() {
			result = multierror.Append(result, errors.Wrap(ErrNoSubscriber, ns.Name))
		}
	}
	return result.ErrorOrNil()
}

func MustRequire(signals ...NamedSignal) {
	if err := Require(signals...); err != nil {
		panic(err)
	}
}
