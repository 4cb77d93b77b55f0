package requests

import (
	"bytes"
	"net/http"

	"lostfound/shared/constants"
)

func GetRequest(token, url string) (*http.Response, error) {
	return sendRequest(token, http.MethodGet, url, nil)
}

func PostRequest(token, url string, data []byte) (*http.Response, error) {
	return sendRequest(token, http.MethodPost, url, data)
}

func PutRequest(token, url string, data []byte) (*http.Response, error) {
	return sendRequest(token, http.MethodPut, url, data)
}

func DeleteRequest(token, url string) (*http.Response, error) {
	return sendRequest(token, http.MethodDelete, url, nil)
}

// sendRequest issues a single request against the backend, attaching the
// auth token header when a token is present. The token is always passed
// in explicitly so nothing below this layer reads session storage.
func sendRequest(token, method, url string, data []byte) (*http.Response, error) {
	req, err := http.NewRequest(method, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	if len(token) > 0 {
		req.Header.Set(constants.AuthTokenHeader, token)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("User-Agent", constants.CLIUserAgent)

	resp, err := new(http.Transport).RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
