// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method does not. The API
// answers with the same 404 not_found body it uses for unknown paths
// instead, so an unsupported method does not reveal that a route exists.
// Requests whose method is registered for the exact pattern are handed back
// to the router.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, KindNotFound, errRouteNotFound.Error(), http.StatusNotFound)
	}
}
