package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey contextKey = "userID"
	AdminCtxKey  contextKey = "admin"
)

const tokenHeader = "x-access-token"

// Verifier extracts and parses the token from the x-access-token header,
// putting the result into the request context for Authenticator.
func Verifier(next http.Handler) http.Handler {
	return jwtauth.Verify(security.TokenAuth, tokenFromHeader)(next)
}

func tokenFromHeader(r *http.Request) string {
	return r.Header.Get(tokenHeader)
}

// Authenticator short-circuits with a code-2 envelope when the token is
// missing (403) or invalid (401); otherwise it attaches the principal to
// the context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil && errors.Is(err, jwtauth.ErrNoTokenFound) {
			common.RespondWithJSON(w, http.StatusForbidden, common.Envelope{
				Data: common.EmptyData,
				Msg:  "A token is required for authentication.",
				Code: common.CodeAuth,
			})
			return
		}
		if err != nil || token == nil {
			common.RespondWithJSON(w, http.StatusUnauthorized, common.Envelope{
				Data:  common.EmptyData,
				Msg:   "Invalid Token.",
				Code:  common.CodeAuth,
				Token: tokenFromHeader(r),
			})
			return
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			common.RespondWithJSON(w, http.StatusUnauthorized, common.Envelope{
				Data:  common.EmptyData,
				Msg:   "Invalid Token.",
				Code:  common.CodeAuth,
				Token: tokenFromHeader(r),
			})
			return
		}
		admin, _ := security.GetAdminFromClaims(claims)

		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, AdminCtxKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly guards the user-administration surface.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := r.Context().Value(AdminCtxKey).(bool)
		if !ok || !admin {
			common.RespondWithJSON(w, http.StatusForbidden, common.Envelope{
				Data: common.EmptyData,
				Msg:  "Admin privileges required.",
				Code: common.CodeAuth,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

func GetAdminFromContext(ctx context.Context) (bool, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(bool)
	return admin, ok
}
