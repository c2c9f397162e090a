package handlers

import (
	"net/http"

	"github.com/kirvedev/ilan-backend/internal/config"
	"github.com/kirvedev/ilan-backend/internal/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadFile handles POST /api/admin/upload: listing photos go to Cloudinary
// and the form gets back a hosted URL.
func UploadFile(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		respondError(w, http.StatusServiceUnavailable, "Upload service not configured")
		return
	}

	// Max 10MB per photo.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided: "+err.Error())
		return
	}
	defer file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "ilan"
	}

	url, err := cloudinaryService.UploadFileFromHeader(r.Context(), fileHeader, folder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to upload file: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
