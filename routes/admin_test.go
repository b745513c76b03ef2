package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"staynest-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildTestApp creates a minimal Iris app with the admin RBAC chain in front
// of a stub handler, so role enforcement is tested without a database.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", func(ctx iris.Context) {
			ctx.StatusCode(iris.StatusNoContent)
		})
	}
	return app
}

// signTestToken returns a signed JWT with the given role
func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Role: role})
	return string(token)
}

func TestAdminUsersRBAC(t *testing.T) {
	app := buildTestApp()
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	// No token -> rejected before the handler runs
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusNoContent {
		t.Fatalf("expected rejection without token, got %d", resp.Code)
	}

	// Guest role -> 403
	req2 := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken("guest"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for guest role, got %d", resp2.Code)
	}

	// Host role -> 403 as well, hosts are not admins
	req3 := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req3.Header.Set("Authorization", "Bearer "+signTestToken("host"))
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for host role, got %d", resp3.Code)
	}

	// Admin role -> passes the chain
	req4 := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req4.Header.Set("Authorization", "Bearer "+signTestToken("admin"))
	resp4 := httptest.NewRecorder()
	app.ServeHTTP(resp4, req4)
	if resp4.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for admin role, got %d", resp4.Code)
	}
}
