package requestmetrics

import (
	"github.com/danielgtaylor/huma/v2"

	"gotodo/internal/metrics"
)

// Recorder counts handled requests by method and status.
type Recorder struct {
	collect *metrics.Collector
}

func New(collect *metrics.Collector) *Recorder {
	return &Recorder{collect: collect}
}

func (r *Recorder) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		method := ctx.Method()

		next(ctx)

		r.collect.RecordHTTPRequest(method, ctx.Status())
	}
}
