package httpserver

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-site/internal/storage"
)

type stubUploader struct {
	folder string
	data   []byte
	err    error
}

func (s *stubUploader) Upload(_ context.Context, folder string, r io.Reader) (*storage.Object, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.folder, s.data = folder, data
	return &storage.Object{Path: folder + "/x.png", URL: "https://cdn.example/" + folder + "/x.png", ContentType: "image/png", Size: int64(len(data))}, nil
}

func (s *stubUploader) MaxBytes() int64 { return 5 << 20 }

func multipartRequest(t *testing.T, folder string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "banner.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	return req
}

func TestUploadHandler_Created(t *testing.T) {
	up := &stubUploader{}
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth(), func(d *Deps) { d.Uploads = up })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "hackathons", []byte("png-bytes")))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if up.folder != "hackathons" || string(up.data) != "png-bytes" {
		t.Fatalf("uploader got folder=%q data=%q", up.folder, up.data)
	}
	if !strings.Contains(rec.Body.String(), `"url":"https://cdn.example/hackathons/x.png"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth(), func(d *Deps) { d.Uploads = &stubUploader{} })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "projects", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Selecione uma imagem") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandler_NotImage(t *testing.T) {
	up := &stubUploader{err: storage.ErrNotImage}
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth(), func(d *Deps) { d.Uploads = up })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "projects", []byte("text")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"upload_not_image"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandler_StoreFailure(t *testing.T) {
	up := &stubUploader{err: io.ErrUnexpectedEOF}
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth(), func(d *Deps) { d.Uploads = up })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, "projects", []byte("png")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"upload"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
