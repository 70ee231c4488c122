package http

import (
	"net/http"
	"strings"
	"time"

	"artistly/internal/http/handlers"
	"artistly/internal/http/metrics"
	httpmw "artistly/internal/http/middleware"
)

type RouterDependencies struct {
	CatalogHandler    *handlers.CatalogHandler
	BrowseHandler     *handlers.BrowseHandler
	OnboardingHandler *handlers.OnboardingHandler
	ReviewHandler     *handlers.ReviewHandler
	MetricsHandler    *handlers.MetricsHandler
	Metrics           *metrics.Collector
	RequestTimeout    time.Duration
}

type Router struct {
	deps    RouterDependencies
	handler http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	r := &Router{deps: deps}
	var observer httpmw.RequestObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	r.handler = httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(observer), httpmw.Timeout(deps.RequestTimeout))
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimSuffix(req.URL.Path, "/")
		if path == "" {
			path = "/"
		}

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
			return
		case req.Method == http.MethodGet && path == "/metrics" && r.deps.MetricsHandler != nil:
			r.deps.MetricsHandler.Get(w, req)
			return
		}

		switch {
		case path == "/categories" || path == "/facets" || path == "/artists" || strings.HasPrefix(path, "/artists/"):
			r.handleCatalog(w, req, path)
			return
		case strings.HasPrefix(path, "/browse/sessions"):
			r.handleBrowse(w, req, path)
			return
		case strings.HasPrefix(path, "/onboarding/"):
			r.handleOnboarding(w, req, path)
			return
		case path == "/submissions" || strings.HasPrefix(path, "/submissions/"):
			r.handleReview(w, req, path)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleCatalog(w http.ResponseWriter, req *http.Request, path string) {
	h := r.deps.CatalogHandler
	switch {
	case req.Method == http.MethodGet && path == "/categories":
		h.Categories(w, req)
		return
	case req.Method == http.MethodGet && path == "/facets":
		h.Facets(w, req)
		return
	case req.Method == http.MethodGet && path == "/artists":
		h.List(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/artists/") && strings.Count(path, "/") == 2:
		h.Get(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) handleBrowse(w http.ResponseWriter, req *http.Request, path string) {
	h := r.deps.BrowseHandler
	depth := strings.Count(path, "/")
	switch {
	case req.Method == http.MethodPost && path == "/browse/sessions":
		h.Open(w, req)
		return
	case req.Method == http.MethodGet && depth == 3:
		h.View(w, req)
		return
	case req.Method == http.MethodPut && depth == 4 && strings.HasSuffix(path, "/selection"):
		h.Select(w, req)
		return
	case req.Method == http.MethodDelete && depth == 4 && strings.HasSuffix(path, "/selection"):
		h.Clear(w, req)
		return
	case req.Method == http.MethodPost && depth == 4 && strings.HasSuffix(path, "/sync"):
		h.Sync(w, req)
		return
	case req.Method == http.MethodPost && depth == 6 && strings.HasSuffix(path, "/toggle") && strings.Contains(path, "/categories/"):
		h.ToggleCategory(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) handleOnboarding(w http.ResponseWriter, req *http.Request, path string) {
	h := r.deps.OnboardingHandler
	depth := strings.Count(path, "/")
	switch {
	case req.Method == http.MethodGet && path == "/onboarding/options":
		h.Options(w, req)
		return
	case req.Method == http.MethodPost && path == "/onboarding/validate":
		h.Validate(w, req)
		return
	case req.Method == http.MethodPost && path == "/onboarding/drafts":
		h.Create(w, req)
		return
	case req.Method == http.MethodGet && depth == 3 && strings.HasPrefix(path, "/onboarding/drafts/"):
		h.Get(w, req)
		return
	case req.Method == http.MethodPut && depth == 3 && strings.HasPrefix(path, "/onboarding/drafts/"):
		h.Update(w, req)
		return
	case req.Method == http.MethodPost && depth == 4 && strings.HasPrefix(path, "/onboarding/drafts/") && strings.HasSuffix(path, "/submit"):
		h.Submit(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) handleReview(w http.ResponseWriter, req *http.Request, path string) {
	h := r.deps.ReviewHandler
	depth := strings.Count(path, "/")
	switch {
	case req.Method == http.MethodGet && path == "/submissions":
		h.List(w, req)
		return
	case req.Method == http.MethodGet && depth == 2:
		h.Get(w, req)
		return
	case req.Method == http.MethodPost && depth == 3 && strings.HasSuffix(path, "/approve"):
		h.Approve(w, req)
		return
	case req.Method == http.MethodPost && depth == 3 && strings.HasSuffix(path, "/reject"):
		h.Reject(w, req)
		return
	}

	http.NotFound(w, req)
}
