package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"rootle-backend/internal/blob"
	"rootle-backend/internal/dto"
	"rootle-backend/internal/middleware"
	"rootle-backend/internal/services"
	"rootle-backend/utils/response"
)

// maxUploadSize caps an upload request body at 20MB.
const maxUploadSize = 20 * 1024 * 1024

type FileHandler struct {
	service *services.FileService
}

func NewFileHandler(service *services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	uploader := middleware.GetUserFromContext(r.Context())
	if uploader == "" {
		response.Error(w, http.StatusUnauthorized, response.KindMissingToken, "No token, authorization denied")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(8 * 1024 * 1024); err != nil {
		response.Error(w, http.StatusBadRequest, response.KindInvalidInput, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.KindMissingFile, "No file selected or invalid file type")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	record, err := h.service.Upload(uploader, services.UploadInput{
		OriginalName: header.Filename,
		MimeType:     contentType,
		Faculty:      r.FormValue("faculty"),
		Department:   r.FormValue("department"),
		Data:         file,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFile):
			response.Error(w, http.StatusBadRequest, response.KindMissingFile, "No file selected or invalid file type")
		case errors.Is(err, services.ErrMissingClassification):
			response.Error(w, http.StatusBadRequest, response.KindMissingClassification, "Faculty and Department are required for upload")
		case errors.Is(err, services.ErrUnsupportedType):
			response.Error(w, http.StatusBadRequest, response.KindUnsupportedType, "Invalid file type. Only PDF, Word documents, and images are allowed")
		default:
			slog.Error("file upload failed", "error", err)
			response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Server error during file upload")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.UploadResponse{
		Message: "File uploaded successfully! Rootle is growing.",
		File: dto.FileSummary{
			ID:           record.ID,
			OriginalName: record.OriginalName,
			Uploader:     record.Uploader,
			UploadDate:   record.UploadDate,
			Faculty:      record.Faculty,
			Department:   record.Department,
		},
	})
}

func (h *FileHandler) MyFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	uploader := middleware.GetUserFromContext(r.Context())
	if uploader == "" {
		response.Error(w, http.StatusUnauthorized, response.KindMissingToken, "No token, authorization denied")
		return
	}

	query := r.URL.Query()
	records, err := h.service.ListMine(uploader, query.Get("faculty"), query.Get("department"))
	if err != nil {
		slog.Error("failed to list user files", "error", err)
		response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Server error while fetching user files")
		return
	}

	response.JSON(w, http.StatusOK, records)
}

func (h *FileHandler) AllFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	query := r.URL.Query()
	records, err := h.service.ListAll(query.Get("faculty"), query.Get("department"))
	if err != nil {
		slog.Error("failed to list all files", "error", err)
		response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Server error while fetching all files")
		return
	}

	response.JSON(w, http.StatusOK, records)
}

// Download is deliberately unauthenticated, matching the rest of the API
// surface this service replaces. Every other file operation requires a
// token; anyone holding a storage key can fetch its blob.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	key := r.PathValue("filename")
	f, size, err := h.service.Open(key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			response.Error(w, http.StatusNotFound, response.KindNotFound, "File not found")
			return
		}
		slog.Error("file download failed", "error", err)
		response.Error(w, http.StatusInternalServerError, response.KindStoreFailure, "Could not download the file")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))

	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}
