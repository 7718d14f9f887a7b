package dropbox

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/phlak/clouddrop/metrics"
	"github.com/phlak/clouddrop/options"
)

const (
	optionNameAccessToken = "accessToken"
	optionNameChunkSize   = "chunkSize"
	optionNameHTTPClient  = "httpClient"
	optionNameLogger      = "logger"
	optionNameRateLimiter = "rateLimiter"
	optionNameMetrics     = "metrics"
	optionNameClient      = "client"
)

// WithAccessToken sets the OAuth2 bearer token sent with every request.
func WithAccessToken(token string) options.NewProviderOption[Provider] {
	return &accessTokenOpt{token: token}
}

type accessTokenOpt struct {
	token string
}

func (o *accessTokenOpt) Apply(p *Provider) {
	p.options.AccessToken = o.token
}

func (o *accessTokenOpt) NewProviderOptionName() string {
	return optionNameAccessToken
}

// WithChunkSize lowers the simple upload ceiling and the upload session window together. Values
// outside (0, DefaultChunkSize] fall back to DefaultChunkSize.
func WithChunkSize(size int64) options.NewProviderOption[Provider] {
	return &chunkSizeOpt{size: size}
}

type chunkSizeOpt struct {
	size int64
}

func (o *chunkSizeOpt) Apply(p *Provider) {
	p.options.ChunkSize = o.size
}

func (o *chunkSizeOpt) NewProviderOptionName() string {
	return optionNameChunkSize
}

// WithHTTPClient returns httpClientOpt implementation of NewProviderOption
//
// WithHTTPClient replaces the *http.Client the transport is built on. A nil client keeps the default.
func WithHTTPClient(c *http.Client) options.NewProviderOption[Provider] {
	return &httpClientOpt{client: c}
}

type httpClientOpt struct {
	client *http.Client
}

func (o *httpClientOpt) Apply(p *Provider) {
	p.options.HTTPClient = o.client
}

func (o *httpClientOpt) NewProviderOptionName() string {
	return optionNameHTTPClient
}

// WithLogger sets the logger for the provider and its transport.
func WithLogger(l *zap.Logger) options.NewProviderOption[Provider] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(p *Provider) {
	p.options.Logger = o.logger
}

func (o *loggerOpt) NewProviderOptionName() string {
	return optionNameLogger
}

// WithRateLimiter throttles requests client-side. Each request waits on l before it is sent.
func WithRateLimiter(l *rate.Limiter) options.NewProviderOption[Provider] {
	return &rateLimiterOpt{limiter: l}
}

type rateLimiterOpt struct {
	limiter *rate.Limiter
}

func (o *rateLimiterOpt) Apply(p *Provider) {
	p.options.RateLimiter = o.limiter
}

func (o *rateLimiterOpt) NewProviderOptionName() string {
	return optionNameRateLimiter
}

// WithMetrics records request and transfer metrics to c.
func WithMetrics(c *metrics.Collector) options.NewProviderOption[Provider] {
	return &metricsOpt{collector: c}
}

type metricsOpt struct {
	collector *metrics.Collector
}

func (o *metricsOpt) Apply(p *Provider) {
	p.options.Metrics = o.collector
}

func (o *metricsOpt) NewProviderOptionName() string {
	return optionNameMetrics
}

// WithClient returns clientOpt implementation of NewProviderOption
//
// WithClient is used to explicitly specify a Client to use for the provider. Options that configure
// the default transport are ignored when a client is set.
func WithClient(c Client) options.NewProviderOption[Provider] {
	return &clientOpt{client: c}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(p *Provider) {
	p.client = o.client
}

func (o *clientOpt) NewProviderOptionName() string {
	return optionNameClient
}
