package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/images"
	"github.com/kahvecikaan/toyshop/internal/service"
)

// sniffLen is how much of an upload is read to detect its type
const sniffLen = 3072

// ImageHandler stores toy pictures and points the toy's imageUrl at them
type ImageHandler struct {
	store      images.Storage
	toyService service.ToyService
	logger     hclog.Logger
}

func NewImageHandler(store images.Storage, ts service.ToyService, log hclog.Logger) *ImageHandler {
	return &ImageHandler{store: store, toyService: ts, logger: log}
}

// UploadImage handles PUT /toys/{id}/image/{filename}
//
// swagger:route PUT /toys/{id}/image/{filename} images uploadToyImage
//
// Stores the request body as the toy's picture and sets its imageUrl.
//
// Responses:
//
//	200: toyMessageResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, fn := vars["id"], vars["filename"]

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.logger.Error("Unable to read upload", "id", id, "error", err)
		writeInternalError(w, CodeUpdateError, "Unable to read the image", err)
		return
	}
	head = head[:n]

	mime := mimetype.Detect(head)
	if !strings.HasPrefix(mime.String(), "image/") {
		writeValidationError(w, "Invalid image", domain.ValidationErrors{
			{Field: "body", Message: fmt.Sprintf("expected an image, got %s", mime.String())},
		})
		return
	}

	fp := path.Join(id, fn)
	err = h.store.Save(fp, io.MultiReader(bytes.NewReader(head), r.Body))
	if errors.Is(err, images.ErrTooLarge) {
		writeValidationError(w, "Invalid image", domain.ValidationErrors{{Field: "body", Message: err.Error()}})
		return
	}
	if err != nil {
		h.logger.Error("Unable to save image", "id", id, "filename", fn, "error", err)
		writeInternalError(w, CodeUpdateError, "Unable to save the image", err)
		return
	}

	imageURL := imageURLFor(r, id, fn)
	toy, err := h.toyService.UpdateToy(r.Context(), id, &domain.UpdateToyRequest{ImageURL: &imageURL})
	if err != nil {
		if derr := h.store.Delete(fp); derr != nil {
			h.logger.Warn("Unable to remove orphaned image", "path", fp, "error", derr)
		}

		if errors.Is(err, domain.ErrToyNotFound) {
			writeError(w, http.StatusNotFound, CodeToyNotFound, "Toy not found")
			return
		}
		h.logger.Error("Error updating toy image", "id", id, "error", err)
		writeInternalError(w, CodeUpdateError, "Error updating toy data", err)
		return
	}

	h.logger.Info("Stored toy image", "id", id, "filename", fn, "type", mime.String())
	writeJSON(w, http.StatusOK, &MessageResponse{Message: "Toy image uploaded", Data: toy})
}

// GetImage handles GET /images/{id}/{filename}
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fp := path.Join(vars["id"], vars["filename"])

	f, err := h.store.Open(fp)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Unable to open image", "path", fp, "error", err)
		http.Error(w, "Unable to serve the image", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("Unable to stat image", "path", fp, "error", err)
		http.Error(w, "Unable to serve the image", http.StatusInternalServerError)
		return
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		h.logger.Warn("Unable to detect content type", "path", fp, "error", err)
		w.Header().Set("Content-Type", "application/octet-stream")
	} else {
		w.Header().Set("Content-Type", mime.String())
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.logger.Error("Unable to rewind image", "path", fp, "error", err)
		http.Error(w, "Unable to serve the image", http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// imageURLFor builds the absolute URL GetImage serves the file under
func imageURLFor(r *http.Request, id, fn string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   "/images/" + id + "/" + fn,
	}
	return u.String()
}
