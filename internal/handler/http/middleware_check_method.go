// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The route table is collected with [chi.Walk] on first use, so nested
// subrouters contribute their full patterns. When some other method is routed
// for the request path the answer is 405 with an Allow header listing those
// methods; otherwise the path is unknown and the answer is 404. Both carry a
// JSON error body like every other API failure.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	table := sync.OnceValue(func() []routeMethod {
		var routes []routeMethod
		_ = chi.Walk(router, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			routes = append(routes, routeMethod{method: method, segments: splitPath(pattern)})
			return nil
		})
		return routes
	})

	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(table(), r.URL.Path)
		if len(allowed) == 0 {
			NotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

type routeMethod struct {
	method   string
	segments []string
}

// allowedMethods lists, in routedMethods order, the methods routed for path.
func allowedMethods(routes []routeMethod, path string) []string {
	segments := splitPath(path)

	allowed := make([]string, 0, len(routedMethods))
	for _, method := range routedMethods {
		for _, rt := range routes {
			if rt.method == method && matchSegments(rt.segments, segments) {
				allowed = append(allowed, method)
				break
			}
		}
	}
	return allowed
}

// matchSegments matches a chi pattern against a request path: {param}
// matches one non-empty segment, a trailing * matches the rest.
func matchSegments(pattern, path []string) bool {
	for i, p := range pattern {
		if p == "*" {
			return true
		}
		if i >= len(path) {
			return false
		}
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if p != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// NotFound answers unknown paths with a JSON 404. Register it via
// [chi.Mux.NotFound].
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
