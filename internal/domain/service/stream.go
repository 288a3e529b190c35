package service

// Stream is a push-based subscription to a device feed.
// C is closed once the stream ends, either because Close was called or the source went away.
type Stream[T any] interface {
	C() <-chan T
	Close() error
}
