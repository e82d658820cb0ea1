package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrentals-api/internal/config"
	jwtinfra "github.com/vrentals-api/internal/infrastructure/jwt"
)

// newTestProvider generates a fresh RSA key pair, writes them to temp files,
// and returns a *jwtinfra.Provider. The temp directory is cleaned up automatically
// by t.TempDir() when the test completes.
func newTestProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))

	cfg := &config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         time.Hour,
	}
	p, err := jwtinfra.NewProvider(cfg)
	require.NoError(t, err)
	return p
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

// protected chains Authenticate and RequireAuth the way the router does.
func protected(p *jwtinfra.Provider) http.Handler {
	return Authenticate(p)(RequireAuth("Please login")(http.HandlerFunc(okHandler)))
}

func captureUser(p *jwtinfra.Provider, req *http.Request) (string, bool) {
	var uid string
	var ok bool
	h := Authenticate(p)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok = UserIDFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return uid, ok
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	p := newTestProvider(t)

	_, ok := captureUser(p, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestAuthenticate_BadTokenIsAnonymous(t *testing.T) {
	p := newTestProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	_, ok := captureUser(p, req)
	assert.False(t, ok)
}

func TestAuthenticate_ValidTokenInjectsClaims(t *testing.T) {
	p := newTestProvider(t)
	signed, err := p.Sign("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	uid, ok := captureUser(p, req)

	assert.True(t, ok)
	assert.Equal(t, "u1", uid)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	p := newTestProvider(t)

	rr := httptest.NewRecorder()
	protected(p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Please login"}`, rr.Body.String())
}

func TestRequireAuth_ForeignKeyToken(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := &jwtinfra.Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
	require.NoError(t, err)

	p := newTestProvider(t) // different key pair, verification fails

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	protected(p).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	p := newTestProvider(t)
	signed, err := p.Sign("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+signed)
	rr := httptest.NewRecorder()
	protected(p).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
