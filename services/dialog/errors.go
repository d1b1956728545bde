package dialog

import "errors"

// ErrNoSession is returned by a SessionStore when no dialog is in progress
// for the chat. Callers treat it as "nothing to do", never as a crash.
var ErrNoSession = errors.New("dialog session not found or expired")
