package unb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unbclub/unb-go/pkg/api"
)

func errResponse(code int, body string) *api.Response {
	return &api.Response{
		Code:    code,
		RawBody: []byte(body),
		Method:  http.MethodGet,
		Path:    "/guilds/1",
	}
}

func TestCheckResponseSuccess(t *testing.T) {
	require.NoError(t, checkResponse(errResponse(http.StatusOK, `{}`)))
	require.NoError(t, checkResponse(errResponse(http.StatusNoContent, ``)))
}

func TestCheckResponseNotFound(t *testing.T) {
	err := checkResponse(errResponse(http.StatusNotFound, `{"message":"Unknown guild"}`))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, http.StatusNotFound, notFound.Status)
	require.Equal(t, "Unknown guild", notFound.Message)

	require.True(t, IsNotFound(err))
	require.False(t, IsForbidden(err))
	require.False(t, IsInvalidToken(err))
}

func TestCheckResponseInvalidToken(t *testing.T) {
	err := checkResponse(errResponse(http.StatusUnauthorized, `{"message":"Invalid authorization header"}`))

	require.True(t, IsInvalidToken(err))
	require.False(t, IsNotFound(err))

	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "Invalid authorization header", invalid.Message)
}

func TestCheckResponseForbidden(t *testing.T) {
	err := checkResponse(errResponse(http.StatusForbidden, `{}`))

	require.True(t, IsForbidden(err))

	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	require.Empty(t, forbidden.Message)
}

func TestCheckResponseOtherStatus(t *testing.T) {
	err := checkResponse(errResponse(http.StatusInternalServerError, `not json`))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Empty(t, apiErr.Message)
	require.Equal(t, []byte(`not json`), apiErr.Body)

	require.False(t, IsNotFound(err))
	require.False(t, IsForbidden(err))
	require.False(t, IsInvalidToken(err))
}

func TestErrorKindsUnwrapToAPIError(t *testing.T) {
	err := checkResponse(&api.Response{
		Code:    http.StatusNotFound,
		RawBody: []byte(`{"message":"Unknown user"}`),
		Method:  http.MethodGet,
		Path:    "/guilds/1/users/2",
	})

	// A caller that only cares about "did the platform refuse" can
	// match the base type through any of the concrete kinds.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Unknown user", apiErr.Message)

	require.Contains(t, err.Error(), "GET /guilds/1/users/2")
	require.Contains(t, err.Error(), "Unknown user")
	require.Contains(t, err.Error(), "404")
}

func TestErrorStringWithoutMessage(t *testing.T) {
	err := checkResponse(errResponse(http.StatusBadGateway, ``))
	require.Contains(t, err.Error(), "GET /guilds/1")
	require.Contains(t, err.Error(), "502")
}
