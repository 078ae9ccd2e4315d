package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/session"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under connect.SessionKey.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
// A session that cannot be decoded, e.g. after rotating keys, is replaced with a fresh one.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := store.GetSession(r)
			ctx := context.WithValue(r.Context(), connect.SessionKey, s)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
