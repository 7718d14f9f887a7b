package dropbox

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/phlak/clouddrop/metrics"
)

// DefaultChunkSize is the largest file sent in a single files/upload request, and the window size of
// each upload session append.
const DefaultChunkSize int64 = 150_000_000

// Options holds dropbox-specific options.
type Options struct {
	AccessToken string
	ChunkSize   int64 // Upload ceiling and session window in bytes; 0 or out of range means DefaultChunkSize
	HTTPClient  *http.Client
	Logger      *zap.Logger
	RateLimiter *rate.Limiter // Optional client-side throttle, waited on before each request
	Metrics     *metrics.Collector
}

// NewOptions returns the default Options.
func NewOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		Logger:    zap.NewNop(),
	}
}

func (o Options) chunkSize() int64 {
	if o.ChunkSize <= 0 || o.ChunkSize > DefaultChunkSize {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
