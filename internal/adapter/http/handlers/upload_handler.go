package handlers

import (
	"log"
	"mime/multipart"
	"net/http"

	response "photostudio/internal/adapter/http/dto/response"
	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase"
	"photostudio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUploadPayload = pkg.NewDomainErrorSimple("INVALID_UPLOAD_INPUT", "Expected a multipart form with at least one file", http.StatusBadRequest)
)

// UploadHandler validates photo upload batches. Validation is per file: the
// response separates accepted files from rejected ones and a bad file never
// sinks the batch.

type UploadHandler struct {
	uploads     *usecase.UploadUseCase
	orderUpload *usecase.UploadUseCase
}

func NewUploadHandler(uploads, orderUpload *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uploads: uploads, orderUpload: orderUpload}
}

// UploadPhotos validates a batch of general photo uploads.
func (h *UploadHandler) UploadPhotos(c *gin.Context) {
	h.validateBatch(c, h.uploads)
}

// UploadCustomOrderPhotos validates a batch against the larger custom-order
// ceiling.
func (h *UploadHandler) UploadCustomOrderPhotos(c *gin.Context) {
	h.validateBatch(c, h.orderUpload)
}

func (h *UploadHandler) validateBatch(c *gin.Context, uc *usecase.UploadUseCase) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	candidates := make([]entities.UploadCandidate, 0, len(files))
	for _, f := range files {
		candidates = append(candidates, candidateFromHeader(f))
	}

	results := uc.ValidateBatch(candidates)
	out := response.FromUploadResults(results)
	log.Printf("[upload][handler] batch validated total=%d accepted=%d rejected=%d", len(results), len(out.Accepted), len(out.Rejected))

	c.JSON(http.StatusOK, out)
}

func candidateFromHeader(f *multipart.FileHeader) entities.UploadCandidate {
	return entities.UploadCandidate{
		Name:        f.Filename,
		ContentType: f.Header.Get("Content-Type"),
		Size:        f.Size,
	}
}
