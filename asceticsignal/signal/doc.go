// Package signal provides a single-subscriber notification slot.
//
// A Signal holds at most one callback of a fixed signature. Subscribe stores
// the callback, replacing any previous one. NotifyN (or Invoke) calls it and
// panics if nothing was subscribed; TryNotifyN and TryInvoke report the same
// condition as an error.
//
// The signature is written once per declaration through the OfN aliases:
//
//	type Actor struct {
//		ActorID int64
//		Signal  signal.Of2[*Observer, int64]
//	}
//
//	actor.Signal.Subscribe((*Observer).OnNotified)
//	signal.Notify2(&actor.Signal, observer, actor.ActorID)
//
// A Signal keeps only the func value. Anything a method value or closure
// refers to must outlive every notification made through the Signal.
//
// Signals are not safe for concurrent use.
package signal

//go:generate go run github.com/krew-solutions/ascetic-signal-go/cmd/signalgen -max=8 -output=arity_generated.go
