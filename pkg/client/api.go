// Package client talks to the posts API and reports state changes to a client-side store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"postshare/pkg/post"
)

// PostFields is a create or update body. A nil Tags leaves the stored tags
// alone; a pointer to an empty slice clears them.
type PostFields struct {
	Title        string    `json:"title,omitempty"`
	Message      string    `json:"message,omitempty"`
	Creator      string    `json:"creator,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	SelectedFile string    `json:"selectedFile,omitempty"`
}

// HTTPError is a non-2xx answer. Message is the server's message when it sent one.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

type API struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*API)

func WithToken(token string) Option {
	return func(a *API) { a.token = token }
}

func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.http = c }
}

// NewAPI targets the posts resource under baseURL, e.g. http://localhost:5000/posts.
func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) FetchPosts(ctx context.Context) ([]post.Post, error) {
	var posts []post.Post
	err := a.do(ctx, http.MethodGet, "", nil, &posts)
	return posts, err
}

func (a *API) CreatePost(ctx context.Context, fields PostFields) (*post.Post, error) {
	p := new(post.Post)
	if err := a.do(ctx, http.MethodPost, "", fields, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *API) UpdatePost(ctx context.Context, id string, fields PostFields) (*post.Post, error) {
	p := new(post.Post)
	if err := a.do(ctx, http.MethodPatch, "/"+id, fields, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *API) LikePost(ctx context.Context, id string) (*post.Post, error) {
	p := new(post.Post)
	if err := a.do(ctx, http.MethodPatch, "/"+id+"/likePost", nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *API) DeletePost(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/"+id, nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: can't encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("client: can't build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: can't read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if json.Unmarshal(data, &msg) == nil && msg.Message != "" {
			httpErr.Message, httpErr.Code = msg.Message, msg.Code
		} else {
			httpErr.Message = fmt.Sprintf("request failed with status code %d", resp.StatusCode)
		}
		return httpErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: can't decode response: %w", err)
	}
	return nil
}
