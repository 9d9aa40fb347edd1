// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

CheckPassword never reports why verification failed; the login handler
returns the same rejection sentence for unknown users and wrong passwords.

# Session Tokens

Sessions are stateless HS256 JWTs carried in an HttpOnly cookie. The signing
secret is an explicit startup parameter (cliparse.Config.SessionSecret),
never process-global state:

	token, err := auth.NewSessionToken(userID, secret, auth.SessionTTL)
	userID, err := auth.ParseSessionToken(token, secret)

The user id is the subject claim; each token gets a uuid jti. Parsing
returns ErrSessionExpired for stale tokens and ErrInvalidSession for
everything else (bad signature, malformed token, missing cookie).

# Cookies

SetSessionCookie and ClearSessionCookie manage the "session" cookie;
SessionUserID resolves a request straight to a user id.
*/
package auth
