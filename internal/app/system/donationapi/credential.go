// internal/app/system/donationapi/credential.go
package donationapi

import (
	"context"
	"net/http"
	"strings"
)

// Credential is the opaque backend session the browser session carries.
// It is the Cookie header value the backend issued at login.
type Credential struct {
	Cookie string
}

// IsZero reports whether no backend session is held.
func (c Credential) IsZero() bool {
	return strings.TrimSpace(c.Cookie) == ""
}

// credentialFromCookies builds a Credential from the cookies a login response set.
func credentialFromCookies(cookies []*http.Cookie) Credential {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		if c.Name == "" || c.MaxAge < 0 {
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	return Credential{Cookie: strings.Join(parts, "; ")}
}

type ctxKey struct{}

// WithCredential returns a context whose calls to the API are made with cred.
func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, ctxKey{}, cred)
}

// CredentialFrom returns the credential carried by ctx, if any.
func CredentialFrom(ctx context.Context) (Credential, bool) {
	cred, ok := ctx.Value(ctxKey{}).(Credential)
	if !ok || cred.IsZero() {
		return Credential{}, false
	}
	return cred, true
}
