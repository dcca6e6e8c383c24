package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"aventra/internal/service"

	"github.com/gorilla/mux"
)

// multipartOverhead leaves room for boundaries and headers on top of the
// file size limit.
const multipartOverhead = 1 << 20

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.UploadService.MaxSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, "file is too large", http.StatusRequestEntityTooLarge)
			return
		}
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := formFile(r, "file", "image")
	if err != nil {
		WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		WriteError(w, "file is too large", http.StatusRequestEntityTooLarge)
		return
	}

	result, err := h.UploadService.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, result, http.StatusCreated)
}

func formFile(r *http.Request, fields ...string) (multipart.File, *multipart.FileHeader, error) {
	var lastErr error
	for _, field := range fields {
		file, header, err := r.FormFile(field)
		if err == nil {
			return file, header, nil
		}
		lastErr = err
	}
	return nil, nil, lastErr
}

func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	rc, info, err := h.UploadService.Open(r.Context(), mux.Vars(r)["file"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer rc.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("failed to stream upload: %v", err)
	}
}

func PlaceholderImage(w http.ResponseWriter, r *http.Request) {
	svg := service.PlaceholderSVG(queryInt(r, "w"), queryInt(r, "h"), r.URL.Query().Get("text"))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, svg); err != nil {
		log.Printf("failed to write placeholder: %v", err)
	}
}
