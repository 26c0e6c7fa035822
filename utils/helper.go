package utils

import (
	"bytes"
	"io"
	"net/http"
)

// ReadBody reads the full request body and puts it back, so downstream
// binding still works after the signature check consumed it.
func ReadBody(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	return string(bodyBytes), nil
}
