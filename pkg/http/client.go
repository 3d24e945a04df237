package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/observability"
)

const defaultClientTimeout = 10 * time.Second

type (
	Destination string

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	client := &ClientImpl{
		DestinationName: "-",
		RESTClient:      resty.New().SetTimeout(defaultClientTimeout),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func WithClientDestination(name Destination, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = string(name)
		c.RESTClient.SetBaseURL(url)
	}
}

func WithRequestObservability(observer observability.Observer) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(RequestIDHeader, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger := logger.With(log.Fields{
				"destination":  c.DestinationName,
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				logger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				logger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.With(log.Fields{
				"destination": c.DestinationName,
				"method":      req.Method,
				"url":         req.URL,
			}).WithError(err).Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": c.DestinationName,
				"method":      resp.Request.Method,
				"code":        strconv.Itoa(resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(dest, baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}
