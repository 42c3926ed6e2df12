package http

import "net/http"

// NewRouter mounts every handler behind the rate limiter.
func NewRouter(
	limiter *RateLimiter,
	evaluations *EvaluationHandler,
	horizons *HorizonHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/scenarios/evaluate", limited(evaluations.Evaluate))
	mux.Handle("/scenarios/defaults", limited(evaluations.Defaults))
	mux.Handle("/scenarios/evaluations", limited(evaluations.List))
	mux.Handle("/scenarios/evaluations/{id}", limited(evaluations.Get))
	mux.Handle("/scenarios/horizon", limited(horizons.Sweep))

	return mux
}
