package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"photostudio/internal/usecase"

	"github.com/gin-gonic/gin"
)

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, contentType := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestUploadHandler_UploadPhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewUploadHandler(usecase.NewUploadUseCase(), usecase.NewCustomOrderUploadUseCase())
	r := gin.New()
	r.POST("/v1/uploads", h.UploadPhotos)

	t.Run("no multipart form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty form", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{})
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mixed batch splits accepted and rejected", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{
			"good.jpg": "image/jpeg",
			"bad.gif":  "image/gif",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var out struct {
			Accepted []map[string]any `json:"accepted"`
			Rejected []map[string]any `json:"rejected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(out.Accepted) != 1 || out.Accepted[0]["name"] != "good.jpg" {
			t.Fatalf("unexpected accepted set: %+v", out.Accepted)
		}
		if len(out.Rejected) != 1 || out.Rejected[0]["name"] != "bad.gif" {
			t.Fatalf("unexpected rejected set: %+v", out.Rejected)
		}
	})
}
