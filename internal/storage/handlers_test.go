package storage

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func uploadRequest(t *testing.T, name, contentType string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + name + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(body)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/storage/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO uploads`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "court.jpg", "image/jpeg", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	app := fiber.New()
	RegisterRoutes(app.Group("/storage"), NewService(mock, t.TempDir()), func(c *fiber.Ctx) error { return c.Next() })

	resp, err := app.Test(uploadRequest(t, "court.jpg", "image/jpeg", []byte("jpeg bytes")))
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status: %v %d", err, resp.StatusCode)
	}

	var up Upload
	if err := json.NewDecoder(resp.Body).Decode(&up); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if up.URL == "" || up.Size != int64(len("jpeg bytes")) {
		t.Fatalf("unexpected upload: %+v", up)
	}
}

func TestUploadHandlerMissingFile(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/storage"), NewService(nil, t.TempDir()), func(c *fiber.Ctx) error { return c.Next() })

	req := httptest.NewRequest(http.MethodPost, "/storage/upload", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %d", resp.StatusCode)
	}
}

func TestUploadHandlerRejectsNonImage(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/storage"), NewService(nil, t.TempDir()), func(c *fiber.Ctx) error { return c.Next() })

	resp, err := app.Test(uploadRequest(t, "notes.txt", "text/plain", []byte("hi")))
	if err != nil || resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("expected unsupported media type, got %d", resp.StatusCode)
	}
}
