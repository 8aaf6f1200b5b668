package signal

import "errors"

var ErrNoSubscriber = errors.New("signal: no subscriber")
