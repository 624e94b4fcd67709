package ws

import (
	"net/http"
	"strings"

	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/auth"
)

// Identity is the authenticated principal behind a connection. It is
// resolved once at the handshake and never re-resolved mid-connection.
type Identity struct {
	ID   string
	Name string
}

// Anonymous reports whether this is the unauthenticated marker identity
func (i Identity) Anonymous() bool { return i.ID == "" }

// IdentityResolver maps a transport-level request to an identity.
// Anonymous results reject the connection before any room interaction.
type IdentityResolver interface {
	Resolve(r *http.Request) Identity
}

// JWTResolver resolves identity from a bearer token, falling back to the
// token query param since browser websocket dials cannot set headers.
type JWTResolver struct {
	verifier *auth.JWT
}

func NewJWTResolver(j *auth.JWT) *JWTResolver { return &JWTResolver{verifier: j} }

func (jr *JWTResolver) Resolve(r *http.Request) Identity {
	tok := r.URL.Query().Get("token")
	if b := r.Header.Get("Authorization"); strings.HasPrefix(b, "Bearer ") {
		tok = strings.TrimPrefix(b, "Bearer ")
	}
	if tok == "" {
		return Identity{}
	}
	claims, err := jr.verifier.Verify(tok)
	if err != nil {
		return Identity{}
	}
	return Identity{ID: claims.UserID, Name: claims.Username}
}
