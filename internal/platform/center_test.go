package platform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCallbackAPI struct{ mock.Mock }

func (m *mockCallbackAPI) RequestAuthorization(opts AuthorizationOptions, done func(bool, error)) {
	args := m.Called(opts, done)
	if fn, ok := args.Get(0).(func(func(bool, error))); ok && fn != nil {
		fn(done)
	}
}

func (m *mockCallbackAPI) RemoveAllDeliveredNotifications() { m.Called() }

func TestAwait_ReturnsFirstCallbackOnly(t *testing.T) {
	v, err := Await(context.Background(), func(done func(int, error)) {
		done(1, nil)
		done(2, errors.New("late"))
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAwait_CallbackFromAnotherGoroutine(t *testing.T) {
	var wg sync.WaitGroup
	v, err := Await(context.Background(), func(done func(string, error)) {
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				done("granted", nil)
			}()
		}
	})
	wg.Wait()
	require.NoError(t, err)
	assert.Equal(t, "granted", v)
}

func TestAwait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var late func(bool, error)
	v, err := Await(ctx, func(done func(bool, error)) { late = done })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, v)

	// a callback after the caller gave up must not block or panic
	late(true, nil)
}

func TestCallbackCenter_RequestAuthorization(t *testing.T) {
	api := &mockCallbackAPI{}
	api.On("RequestAuthorization", DefaultOptions, mock.Anything).
		Return(func(done func(bool, error)) { go done(true, nil) })

	granted, err := NewCallbackCenter(api).RequestAuthorization(context.Background(), DefaultOptions)
	require.NoError(t, err)
	assert.True(t, granted)
	api.AssertExpectations(t)
}

func TestCallbackCenter_PropagatesError(t *testing.T) {
	denied := errors.New("denied by policy")
	api := &mockCallbackAPI{}
	api.On("RequestAuthorization", OptionAlert, mock.Anything).
		Return(func(done func(bool, error)) { done(false, denied) })

	_, err := NewCallbackCenter(api).RequestAuthorization(context.Background(), OptionAlert)
	assert.ErrorIs(t, err, denied)
}

func TestCallbackCenter_RemoveAllDelivered(t *testing.T) {
	api := &mockCallbackAPI{}
	api.On("RemoveAllDeliveredNotifications").Return()

	NewCallbackCenter(api).RemoveAllDelivered()
	api.AssertNumberOfCalls(t, "RemoveAllDeliveredNotifications", 1)
}

func TestHeadless(t *testing.T) {
	h := &Headless{Granted: true}
	granted, err := h.RequestAuthorization(context.Background(), DefaultOptions)
	require.NoError(t, err)
	assert.True(t, granted)

	h.RemoveAllDelivered()
	h.RemoveAllDelivered()
	assert.Equal(t, 2, h.Cleared())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.RequestAuthorization(ctx, DefaultOptions)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthorizationOptions(t *testing.T) {
	assert.Equal(t, "badge|sound|alert", DefaultOptions.String())
	assert.Equal(t, "none", AuthorizationOptions(0).String())
	assert.Equal(t, OptionCarPlay|OptionProvisional, ParseOptions([]string{"carPlay", " PROVISIONAL ", "bogus"}))
}
