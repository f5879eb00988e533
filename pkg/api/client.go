package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/unbclub/unb-go/pkg/logger"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	PUT(ctx context.Context, opts ...Opt) (*Response, error)
	PATCH(ctx context.Context, opts ...Opt) (*Response, error)
	DELETE(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewGenerator(baseURL string) *defaultGenerator {
	return &defaultGenerator{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		log:        logger.NewNopLogger(),
	}
}

func (g *defaultGenerator) WithHTTPClient(httpClient *http.Client) *defaultGenerator {
	g.httpClient = httpClient
	return g
}

func (g *defaultGenerator) WithLogger(log logger.Logger) *defaultGenerator {
	g.log = log
	return g
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		baseURL:    g.baseURL,
		httpClient: g.httpClient,
		log:        g.log,
		path:       fmt.Sprintf(path, args...),
		headers:    make(http.Header),
	}
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type Opt interface {
	Do(defaultClient, *http.Request)
}

type defaultClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger

	method  string
	path    string
	headers http.Header
	query   Parameter
	body    Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx, opts...)
}

func (c *defaultClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx, opts...)
}

func (c *defaultClient) PATCH(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPatch
	return c.call(ctx, opts...)
}

func (c *defaultClient) DELETE(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodDelete
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	url := c.baseURL + c.path
	if len(c.query) > 0 {
		url = url + "?" + c.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	for _, opt := range opts {
		opt.Do(*c, req)
	}

	id := uuid.NewString()
	c.log.Debugf("api: %s %s id=%s", c.method, c.path, id)

	result, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("api: %s %s id=%s transport error: %v", c.method, c.path, id, err)
		return nil, fmt.Errorf("call %s %s: %w", c.method, c.path, err)
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		c.log.Warnf("api: %s %s id=%s read error: %v", c.method, c.path, id, err)
		return nil, fmt.Errorf("read response of %s %s: %w", c.method, c.path, err)
	}

	c.log.Debugf("api: %s %s id=%s status=%d", c.method, c.path, id, result.StatusCode)

	return &Response{
		Code:    result.StatusCode,
		Header:  result.Header,
		RawBody: body,
		Method:  c.method,
		Path:    c.path,
	}, nil
}
