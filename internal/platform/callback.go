package platform

import (
	"context"
	"sync"
)

// CallbackAPI is a permission API that reports its answer through a callback.
// Implementations may call done from any goroutine, possibly more than once.
type CallbackAPI interface {
	RequestAuthorization(opts AuthorizationOptions, done func(granted bool, err error))
	RemoveAllDeliveredNotifications()
}

// CallbackCenter adapts a CallbackAPI to Center.
type CallbackCenter struct {
	api CallbackAPI
}

func NewCallbackCenter(api CallbackAPI) *CallbackCenter {
	return &CallbackCenter{api: api}
}

func (c *CallbackCenter) RequestAuthorization(ctx context.Context, opts AuthorizationOptions) (bool, error) {
	return Await(ctx, func(done func(bool, error)) {
		c.api.RequestAuthorization(opts, done)
	})
}

func (c *CallbackCenter) RemoveAllDelivered() {
	c.api.RemoveAllDeliveredNotifications()
}

type result[T any] struct {
	val T
	err error
}

// Await starts fn and blocks until fn's callback fires or ctx is done.
// Only the first callback invocation counts; later ones are dropped.
func Await[T any](ctx context.Context, fn func(done func(T, error))) (T, error) {
	ch := make(chan result[T], 1)
	var once sync.Once
	fn(func(v T, err error) {
		once.Do(func() { ch <- result[T]{val: v, err: err} })
	})
	select {
	case r := <-ch:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
