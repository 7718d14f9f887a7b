package dropbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/phlak/clouddrop"
	"github.com/phlak/clouddrop/metrics"
)

const (
	apiURL     = "https://api.dropboxapi.com/2/"
	contentURL = "https://content.dropboxapi.com/2/"

	apiArgHeader    = "Dropbox-API-Arg"
	apiResultHeader = "Dropbox-API-Result"

	// limiterDeadlineMessage is how rate.Limiter.Wait reports a token that would arrive after the
	// context deadline. It does not wrap context.DeadlineExceeded.
	limiterDeadlineMessage = "would exceed context deadline"

	contentTypeJSON   = "application/json"
	contentTypeStream = "application/octet-stream"
)

// Dropbox API v2 routes.
const (
	routeGetMetadata        = "files/get_metadata"
	routeListFolder         = "files/list_folder"
	routeListFolderContinue = "files/list_folder/continue"
	routeDownload           = "files/download"
	routeUpload             = "files/upload"
	routeSessionStart       = "files/upload_session/start"
	routeSessionAppend      = "files/upload_session/append_v2"
	routeSessionFinish      = "files/upload_session/finish"
	routeDelete             = "files/delete_v2"
)

// httpClient implements Client against the Dropbox HTTP API using resty.
type httpClient struct {
	rest       *resty.Client
	apiURL     string
	contentURL string
	limiter    *rate.Limiter
	metrics    *metrics.Collector
	logger     *zap.Logger
}

func newHTTPClient(opts Options) *httpClient {
	var rest *resty.Client
	if opts.HTTPClient != nil {
		rest = resty.NewWithClient(opts.HTTPClient)
	} else {
		rest = resty.New()
	}

	logger := opts.logger().With(zap.String("provider", Name))
	rest.SetAuthToken(opts.AccessToken).
		SetLogger(logger.Sugar()).
		SetRetryCount(0)

	return &httpClient{
		rest:       rest,
		apiURL:     apiURL,
		contentURL: contentURL,
		limiter:    opts.RateLimiter,
		metrics:    opts.Metrics,
		logger:     logger,
	}
}

type listFolderResult struct {
	Entries []*clouddrop.Metadata `json:"entries"`
	Cursor  string                `json:"cursor"`
	HasMore bool                  `json:"has_more"`
}

type deleteResult struct {
	Metadata *clouddrop.Metadata `json:"metadata"`
}

func (c *httpClient) GetMetadata(ctx context.Context, arg *files.GetMetadataArg) (*clouddrop.Metadata, error) {
	md := &clouddrop.Metadata{}
	if err := c.rpc(ctx, routeGetMetadata, arg.Path, arg, md); err != nil {
		return nil, err
	}
	return md, nil
}

func (c *httpClient) ListFolder(ctx context.Context, arg *files.ListFolderArg) ([]*clouddrop.Metadata, string, bool, error) {
	var res listFolderResult
	if err := c.rpc(ctx, routeListFolder, arg.Path, arg, &res); err != nil {
		return nil, "", false, err
	}
	return res.Entries, res.Cursor, res.HasMore, nil
}

func (c *httpClient) ListFolderContinue(ctx context.Context, arg *files.ListFolderContinueArg) ([]*clouddrop.Metadata, string, bool, error) {
	var res listFolderResult
	if err := c.rpc(ctx, routeListFolderContinue, "", arg, &res); err != nil {
		return nil, "", false, err
	}
	return res.Entries, res.Cursor, res.HasMore, nil
}

func (c *httpClient) Download(ctx context.Context, arg *files.DownloadArg) (*clouddrop.Metadata, []byte, error) {
	md := &clouddrop.Metadata{}
	resp, err := c.content(ctx, routeDownload, arg.Path, arg, "", nil, func(resp *resty.Response) error {
		result := resp.Header().Get(apiResultHeader)
		if result == "" {
			return malformedResponse(routeDownload, resp, "response is missing the "+apiResultHeader+" header", false)
		}
		if err := json.Unmarshal([]byte(result), md); err != nil {
			return malformedResponse(routeDownload, resp, "decoding "+apiResultHeader+" header: "+err.Error(), false)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return md, resp.Body(), nil
}

func (c *httpClient) Upload(ctx context.Context, arg *files.UploadArg, content io.Reader) (*clouddrop.Metadata, error) {
	md := &clouddrop.Metadata{}
	if err := c.upload(ctx, routeUpload, arg.Path, arg, content, md); err != nil {
		return nil, err
	}
	return md, nil
}

func (c *httpClient) UploadSessionStart(ctx context.Context, arg *files.UploadSessionStartArg, content io.Reader) (*files.UploadSessionStartResult, error) {
	res := &files.UploadSessionStartResult{}
	if err := c.upload(ctx, routeSessionStart, "", arg, content, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *httpClient) UploadSessionAppendV2(ctx context.Context, arg *files.UploadSessionAppendArg, content io.Reader) error {
	return c.upload(ctx, routeSessionAppend, "", arg, content, nil)
}

func (c *httpClient) UploadSessionFinish(ctx context.Context, arg *files.UploadSessionFinishArg, content io.Reader) (*clouddrop.Metadata, error) {
	var subject string
	if arg.Commit != nil {
		subject = arg.Commit.Path
	}
	md := &clouddrop.Metadata{}
	if err := c.upload(ctx, routeSessionFinish, subject, arg, content, md); err != nil {
		return nil, err
	}
	return md, nil
}

func (c *httpClient) DeleteV2(ctx context.Context, arg *files.DeleteArg) (*clouddrop.Metadata, error) {
	var res deleteResult
	if err := c.rpc(ctx, routeDelete, arg.Path, arg, &res); err != nil {
		return nil, err
	}
	return res.Metadata, nil
}

// rpc posts arg as a JSON body to an api route and decodes the JSON response into out.
func (c *httpClient) rpc(ctx context.Context, route, subject string, arg, out any) error {
	_, err := c.do(ctx, route, subject, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", contentTypeJSON).
			SetBody(arg).
			Post(c.apiURL + route)
	}, decoder(route, out))
	return err
}

// upload posts content to a content route with arg in the Dropbox-API-Arg header and decodes the
// JSON response into out.
func (c *httpClient) upload(ctx context.Context, route, subject string, arg any, content io.Reader, out any) error {
	_, err := c.content(ctx, route, subject, arg, contentTypeStream, content, decoder(route, out))
	return err
}

// content calls a content route. An empty contentType omits the Content-Type header, which the
// download routes require.
func (c *httpClient) content(ctx context.Context, route, subject string, arg any, contentType string, body io.Reader, parse func(*resty.Response) error) (*resty.Response, error) {
	header, err := headerSafeJSON(arg)
	if err != nil {
		return nil, &clouddrop.TransportError{Route: route, Err: fmt.Errorf("encoding %s: %w", apiArgHeader, err)}
	}

	return c.do(ctx, route, subject, func(r *resty.Request) (*resty.Response, error) {
		r.SetHeader(apiArgHeader, header)
		if contentType != "" {
			r.SetHeader("Content-Type", contentType)
		}
		if body != nil {
			r.SetBody(body)
		}
		return r.Post(c.contentURL + route)
	}, parse)
}

// do waits on the limiter, sends the request, classifies the result, and records it. parse, when
// set, reads a successful response; its failure counts as the request's failure.
func (c *httpClient) do(ctx context.Context, route, subject string, send func(*resty.Request) (*resty.Response, error), parse func(*resty.Response) error) (*resty.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			err = limiterError(ctx, route, err)
			c.metrics.ObserveRequest(Name, route, metrics.Outcome(err), 0)
			return nil, err
		}
	}

	start := time.Now()
	resp, err := send(c.rest.R().SetContext(ctx))
	elapsed := time.Since(start)

	if err != nil {
		err = transportError(ctx, route, err)
	} else if err = responseError(route, subject, resp); err == nil && parse != nil {
		err = parse(resp)
	}
	c.metrics.ObserveRequest(Name, route, metrics.Outcome(err), elapsed)

	if err != nil {
		c.logger.Debug("dropbox request failed",
			zap.String("route", route),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("dropbox request",
		zap.String("route", route),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", elapsed),
	)
	return resp, nil
}

// decoder returns a parse func that decodes the JSON response body into out. A nil out accepts any
// body.
func decoder(route string, out any) func(*resty.Response) error {
	if out == nil {
		return nil
	}
	return func(resp *resty.Response) error {
		body := resp.Body()
		if len(body) == 0 {
			return malformedResponse(route, resp, "empty response body", true)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return malformedResponse(route, resp, "decoding response: "+err.Error(), true)
		}
		if res, ok := out.(*deleteResult); ok && res.Metadata == nil {
			return malformedResponse(route, resp, "response has no metadata", true)
		}
		return nil
	}
}

// malformedResponse reports a 2xx response whose contents could not be read. Download bodies are
// file contents and are left out of the error.
func malformedResponse(route string, resp *resty.Response, summary string, withBody bool) error {
	err := &clouddrop.RemoteAPIError{
		Route:      route,
		StatusCode: resp.StatusCode(),
		Summary:    summary,
	}
	if withBody {
		err.Body = resp.Body()
	}
	return err
}

// headerSafeJSON encodes v as JSON with every non-ASCII rune escaped as \uXXXX, using UTF-16
// surrogate pairs above U+FFFF. HTTP header values must be ASCII.
func headerSafeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for _, r := range string(b) {
		if r < utf8.RuneSelf {
			sb.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&sb, `\u%04x`, r)
	}
	return sb.String(), nil
}

// transportError classifies a request that produced no response.
func transportError(ctx context.Context, route string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return &clouddrop.CancelledError{Route: route, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &clouddrop.TimeoutError{Route: route, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &clouddrop.TimeoutError{Route: route, Err: err}
	}

	switch ctx.Err() {
	case context.Canceled:
		return &clouddrop.CancelledError{Route: route, Err: errors.Join(ctx.Err(), err)}
	case context.DeadlineExceeded:
		return &clouddrop.TimeoutError{Route: route, Err: errors.Join(ctx.Err(), err)}
	}
	return &clouddrop.TransportError{Route: route, Err: err}
}

// limiterError classifies a failed rate.Limiter wait. The limiter refuses up front when the
// context deadline would pass before a token is available; any other refusal, such as a burst
// smaller than one request, is a TransportError.
func limiterError(ctx context.Context, route string, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return &clouddrop.CancelledError{Route: route, Err: err}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &clouddrop.TimeoutError{Route: route, Err: err}
	case strings.Contains(err.Error(), limiterDeadlineMessage):
		return &clouddrop.TimeoutError{Route: route, Err: errors.Join(context.DeadlineExceeded, err)}
	}
	return &clouddrop.TransportError{Route: route, Err: err}
}

// responseError classifies a non-2xx response. subject is the path the request addressed, if any.
func responseError(route, subject string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := resp.Body()
	var apiErr struct {
		ErrorSummary string `json:"error_summary"`
	}
	_ = json.Unmarshal(body, &apiErr)

	if resp.StatusCode() == http.StatusConflict && strings.Contains(apiErr.ErrorSummary, "not_found") {
		return &clouddrop.FileNotFoundError{Path: subject, Summary: apiErr.ErrorSummary}
	}
	return &clouddrop.RemoteAPIError{
		Route:      route,
		StatusCode: resp.StatusCode(),
		Summary:    apiErr.ErrorSummary,
		Body:       body,
	}
}
