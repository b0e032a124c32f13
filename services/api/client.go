// Package apisvc is the authenticated REST client for the darasa backend.
// It normalizes the backend's two response envelopes ({success, data,
// message} vs a bare payload) so downstream services see one shape.
package apisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
)

type Client struct {
	base string
	http *http.Client
	sess *core.Session
	log  core.Logger
}

func NewClient(conf *core.Config, sess *core.Session, log core.Logger) *Client {
	return &Client{
		base: strings.TrimRight(conf.APIBaseURL, "/"),
		http: &http.Client{Timeout: conf.RequestTimeout},
		sess: sess,
		log:  log,
	}
}

// envelope is the wrapped response convention; some endpoints return the
// payload bare instead, which the decoder tolerates.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "api: encode request")
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return errors.Wrap(err, "api: build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// upload posts a multipart form; fields first, the file part last.
func (c *Client) upload(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return errors.Wrap(err, "api: write form field")
		}
	}
	part, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return errors.Wrap(err, "api: create form file")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "api: copy file")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "api: close form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return errors.Wrap(err, "api: build request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.sess != nil && c.sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "api: "+req.Method+" "+req.URL.Path)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "api: read response")
	}
	return c.decode(res.StatusCode, raw, out)
}

func (c *Client) decode(status int, raw []byte, out interface{}) error {
	var env envelope
	wrapped := json.Unmarshal(raw, &env) == nil && env.Data != nil

	if status < 200 || status >= 300 || (env.Success != nil && !*env.Success) {
		return newError(status, env.Message, raw)
	}
	if out == nil {
		return nil
	}
	payload := raw
	if wrapped {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "api: decode response")
	}
	return nil
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}
