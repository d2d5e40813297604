package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Authenticator validates a request before it reaches the widget data source.
// A nil error allows the request to proceed.
type Authenticator func(r *http.Request) error

// errKeyIncorrect is the fixed rejection returned for any failure of the API
// key check.
var errKeyIncorrect = NewError(http.StatusForbidden, "API key incorrect")

// APIKeyAuth creates an authenticator that checks the key embedded in the
// Authorization header against the configured API key. Dashboard services
// submit the key as the username of a Basic credential, i.e.
// base64("<key>:<password>"), and the password is ignored.
//
// An empty key disables the check, allowing all requests.
func APIKeyAuth(key string) Authenticator {
	return func(r *http.Request) error {
		if key == "" {
			return nil
		}

		auth := strings.Fields(r.Header.Get("Authorization"))
		if len(auth) != 2 || !strings.EqualFold(auth[0], "basic") {
			return errKeyIncorrect
		}

		cred, err := base64.StdEncoding.DecodeString(auth[1])
		if err != nil {
			return errKeyIncorrect
		}

		reqKey, _, _ := strings.Cut(string(cred), ":")
		if reqKey != key {
			return errKeyIncorrect
		}

		return nil
	}
}
