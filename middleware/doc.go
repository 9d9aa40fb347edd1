// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request wrappers and response helpers.

# Authentication Gate

RequireUser resolves the session cookie to a user id and stores it in the
request context; anything without a valid session is redirected to /login:

	mux.HandleFunc("GET /dashboard", middleware.RequireUser(secret, handler.Dashboard))

Handlers read the id back with middleware.UserID(r.Context()).

# Logging

WithLogging logs start and completion of each request with a uuid request id
via log/slog.

# Responses

TextResponse writes plain text (the app's error surface is human-readable
sentences, not JSON); ServerError writes the generic failure text.
*/
package middleware
