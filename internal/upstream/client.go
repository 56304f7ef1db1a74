package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is the shared REST client every adapter builds on. One method
// call maps to one request; every failure is terminal for the caller.
type Client struct {
	client  http.Client
	log     *logrus.Entry
	baseURL string
}

func NewClient(log *logrus.Entry, baseURL string) *Client {
	c := http.Client{
		Timeout: time.Second * 10,
	}

	return &Client{
		client:  c,
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// MutationResult is the envelope mutation endpoints answer with.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Get(path string, query url.Values, out any) (int, error) {
	return c.do(http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(path string, body any, out any) (int, error) {
	return c.do(http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(path string, body any, out any) (int, error) {
	return c.do(http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(path string, out any) (int, error) {
	return c.do(http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(method, path string, query url.Values, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			c.log.Errorf("%s %s: failed to marshal request body - %v", method, path, err)
			return 0, NewError(JsonAppError, "requete invalide", 500, err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		c.log.Errorf("%s %s: failed to create request - %v", method, path, err)
		return 0, NewError(ServerAppError, "requete invalide", 500, err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("%s %s: request failed - %v", method, path, err)
		return 0, NewError(ServerAppError, "service indisponible", 502, err)
	}
	defer resp.Body.Close()

	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debugf("%s %s: failed readAll body - %v", method, path, err)
		return 0, NewError(ServerAppError, "service indisponible", 502, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(bts, resp.StatusCode)
		c.log.Debugf("%s %s: upstream status %d, body - %s", method, path, resp.StatusCode, string(bts))
		return resp.StatusCode, NewError(HttpError, msg, resp.StatusCode, nil)
	}

	if out != nil {
		if err := json.Unmarshal(bts, out); err != nil {
			c.log.Errorf("%s %s: failed to decode response body - %v", method, path, err)
			return resp.StatusCode, NewError(JsonAppError, "reponse invalide du serveur", 502, err)
		}
	}

	return resp.StatusCode, nil
}

// errorMessage picks the best message from an error body: the server
// provided one when the body is JSON, a generic fallback otherwise.
func errorMessage(bts []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}

	if err := json.Unmarshal(bts, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Details != "":
			return payload.Details
		case payload.Error != "":
			return payload.Error
		}
	}

	return fmt.Sprintf("erreur %d", status)
}
