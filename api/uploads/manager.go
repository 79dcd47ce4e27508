package uploads

import (
	"errors"
	"io"
	"net/http"

	"bcspace_server/lib"
	"bcspace_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type UploadRoutesManager struct {
	logger         *gecho.Logger
	storageService *services.StorageService
}

func NewUploadRoutesManager(logger *gecho.Logger, storageService *services.StorageService) *UploadRoutesManager {
	return &UploadRoutesManager{
		logger:         logger,
		storageService: storageService,
	}
}

func (urm *UploadRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/uploads", urm.UploadImage)
}

// UploadImage handles POST /uploads for customer reference images
// (customization proofs, quote attachments). Multipart with a single
// "file" part.
func (urm *UploadRoutesManager) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxSize := urm.storageService.MaxUploadSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+4096) // multipart framing overhead

	if err := r.ParseMultipartForm(maxSize); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid or oversized upload"),
			gecho.Send(),
		)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Missing file field"),
			gecho.Send(),
		)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Failed to read uploaded file"),
			gecho.Send(),
		)
		return
	}

	url, err := urm.storageService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, lib.ErrUpstream) {
			urm.logger.Error("Storage unavailable", gecho.Field("error", err))
			gecho.ServiceUnavailable(w,
				gecho.WithMessage("Upload service is temporarily unavailable"),
				gecho.Send(),
			)
			return
		}
		urm.logger.Warn("Upload rejected", gecho.Field("filename", header.Filename), gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"url": url}),
		gecho.Send(),
	)
}
