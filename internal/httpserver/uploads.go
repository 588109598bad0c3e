package httpserver

import (
	"errors"
	"net/http"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/i18n"
	"portfolio-site/internal/service/content"

	"github.com/gin-gonic/gin"
)

// multipart framing allowance on top of the file limit
const formOverhead = 64 << 10

func (h *handler) upload(c *gin.Context) {
	if h.deps.Uploads == nil {
		h.abort(c, http.StatusServiceUnavailable, i18n.UploadFailed)
		return
	}
	max := h.deps.Uploads.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max+formOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.abort(c, http.StatusRequestEntityTooLarge, i18n.UploadTooLarge, max>>20)
			return
		}
		h.abort(c, http.StatusBadRequest, i18n.UploadMissing)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, &content.OpError{Op: content.OpUpload, Err: err}, nil)
		return
	}
	defer f.Close()

	obj, err := h.deps.Uploads.Upload(c.Request.Context(), c.PostForm("folder"), f)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) {
			err = &content.OpError{Op: content.OpUpload, Err: err}
		}
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, obj)
}
