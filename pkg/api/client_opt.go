package api

import (
	"net/http"
)

type tokenOpt struct {
	token string
}

// TokenAuth authorizes a request with a bare token. The platform
// expects the token in the Authorization header without a scheme
// prefix.
func TokenAuth(token string) *tokenOpt {
	return &tokenOpt{token: token}
}

func (opt *tokenOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("Authorization", opt.token)
}
