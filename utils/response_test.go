package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"staynest-server/models"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func TestHandleWriteErrorMapping(t *testing.T) {
	var current error
	app := iris.New()
	app.Post("/write", func(ctx iris.Context) {
		HandleWriteError(current, ctx)
	})
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	cases := []struct {
		name      string
		err       error
		status    int
		wantTitle string
	}{
		{"duplicated key from driver", gorm.ErrDuplicatedKey, http.StatusConflict, "Uniqueness Violation"},
		{"wrapped uniqueness sentinel", fmt.Errorf("%w: email taken", models.ErrUniquenessViolation), http.StatusConflict, "Uniqueness Violation"},
		{"foreign key from driver", gorm.ErrForeignKeyViolated, http.StatusConflict, "Referential Integrity Violation"},
		{"wrapped referential sentinel", fmt.Errorf("%w: unknown property", models.ErrReferentialViolation), http.StatusConflict, "Referential Integrity Violation"},
		{"wrapped domain check sentinel", fmt.Errorf("%w: rating out of range", models.ErrDomainCheckViolation), http.StatusUnprocessableEntity, "Domain Check Violation"},
		{"wrapped not null sentinel", fmt.Errorf("%w: name is required", models.ErrNotNullViolation), http.StatusUnprocessableEntity, "Not Null Violation"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "Not Found"},
		{"unclassified failure", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		current = tc.err

		req := httptest.NewRequest(http.MethodPost, "/write", nil)
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)

		if resp.Code != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.status, resp.Code)
		}

		var body struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Errorf("%s: failed to decode body: %v", tc.name, err)
			continue
		}
		if body.Title != tc.wantTitle {
			t.Errorf("%s: expected title %q, got %q", tc.name, tc.wantTitle, body.Title)
		}
	}
}
