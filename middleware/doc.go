// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an X-Request-ID (a UUID unless the client sent one),
echoed in the response. Logs request start (method, path, client IP) and
completion (status, humanized response size, duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST and OPTIONS.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusOK, "true")
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
