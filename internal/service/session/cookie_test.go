package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chatfront/internal/service/session"
)

func TestManagerMintsAndResolvesToken(t *testing.T) {
	mgr := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	token := mgr.Token(w, r)
	if token == "" {
		t.Fatal("expected a minted token")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(cookies))
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	// Presenting the cookie again resolves the same token.
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])
	if got := mgr.Token(httptest.NewRecorder(), r2); got != token {
		t.Fatalf("token round-trip mismatch: got %q want %q", got, token)
	}
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	mgr := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))

	w := httptest.NewRecorder()
	token := mgr.Token(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookie := w.Result().Cookies()[0]
	cookie.Value = cookie.Value + "x"

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)

	if got := mgr.Token(httptest.NewRecorder(), r); got == token {
		t.Fatal("tampered cookie must not resolve to the original token")
	}
}

func TestManagerDifferentSecretsDoNotVerify(t *testing.T) {
	mgrA := session.NewManager([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	mgrB := session.NewManager([]byte("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"))

	w := httptest.NewRecorder()
	token := mgrA.Token(w, httptest.NewRequest(http.MethodGet, "/", nil))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(w.Result().Cookies()[0])

	if got := mgrB.Token(httptest.NewRecorder(), r); got == token {
		t.Fatal("cookie signed under another secret must not verify")
	}
}
