// Package semaphore bounds the number of goroutines the contract checker runs
// at once. A nil Semaphore has unlimited capacity and never blocks, so callers
// need no special case for "no limit".
package semaphore

// Semaphore is a counting semaphore backed by a buffered channel. The buffer
// size is the maximum number of tokens held at once, and len reports the number
// currently held.
type Semaphore chan struct{}

// New returns a Semaphore holding at most limit tokens. A negative limit
// returns the nil, unlimited Semaphore. A zero limit blocks every Acquire.
func New(limit int) Semaphore {
	if limit < 0 {
		return nil
	}
	return make(Semaphore, limit)
}

// Acquire blocks until a token is available and takes it. It returns
// immediately on a nil Semaphore.
func (s Semaphore) Acquire() {
	if s == nil {
		return
	}
	s <- struct{}{}
}

// Release returns a token taken by Acquire. Each Acquire must be paired with
// exactly one Release; releasing a token that was never acquired blocks.
func (s Semaphore) Release() {
	if s == nil {
		return
	}
	<-s
}
