package notifyapi

import (
	"errors"
	"testing"

	"github.com/go-notify-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	ok := &Response{Metadata: Metadata{Status: true, Code: StatusCode(200)}, Body: []byte(`{}`)}
	assert.NoError(t, Check(ok))

	assert.ErrorIs(t, Check(nil), domain.ErrInvalidResponse)

	noBody := &Response{Metadata: Metadata{Status: true, Code: StatusCode(200)}}
	assert.ErrorIs(t, Check(noBody), domain.ErrInvalidResponse)

	noCode := &Response{Metadata: Metadata{Status: false}, Body: []byte("x")}
	assert.ErrorIs(t, Check(noCode), domain.ErrInvalidResponse)

	failed := &Response{Metadata: Metadata{Status: false, Code: StatusCode(500)}, Body: []byte("boom")}
	err := Check(failed)
	var se *domain.ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.Code)
	assert.Equal(t, []byte("boom"), se.Body)
}

func TestDecode(t *testing.T) {
	resp := &Response{Metadata: Metadata{Status: true, Code: StatusCode(200)}, Body: []byte(`{"unread":"3"}`)}
	out, err := Decode[domain.UnreadResponse](resp)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Unread)
}

func TestDecode_MalformedBody(t *testing.T) {
	resp := &Response{Metadata: Metadata{Status: true, Code: StatusCode(200)}, Body: []byte(`{"unread":"abc"}`)}
	out, err := Decode[domain.UnreadResponse](resp)

	var de *domain.DecodingError
	require.True(t, errors.As(err, &de))
	assert.Zero(t, out)
}

func TestDecode_ServerErrorWinsOverBody(t *testing.T) {
	resp := &Response{Metadata: Metadata{Status: false, Code: StatusCode(404)}, Body: []byte(`{"notifies":[]}`)}
	_, err := Decode[domain.NotifiesResponse](resp)

	var se *domain.ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.Code)
}
