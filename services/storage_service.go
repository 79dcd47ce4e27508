package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"bcspace_server/lib"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// StorageService uploads customer images (customization references, quote
// attachments) to the external blob store over its HTTP API.
type StorageService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *http.Client
}

func NewStorageService(logger *gecho.Logger, cfg *structs.Config) *StorageService {
	return &StorageService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Notify.Timeout},
	}
}

var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MaxUploadSize exposes the configured limit so handlers can cap the
// request body before reading it.
func (ss *StorageService) MaxUploadSize() int64 {
	return ss.cfg.Storage.MaxUploadSize
}

// Upload stores one object and returns its public URL. The object key is
// always freshly generated; the original filename only contributes a hint
// for the admin panel.
func (ss *StorageService) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
	if int64(len(data)) > ss.cfg.Storage.MaxUploadSize {
		return "", fmt.Errorf("file exceeds maximum upload size of %d bytes", ss.cfg.Storage.MaxUploadSize)
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New(), ext)
	if hint := sanitizeFilename(filename); hint != "" {
		key = fmt.Sprintf("uploads/%s-%s%s", uuid.New(), hint, ext)
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s",
		strings.TrimSuffix(ss.cfg.Storage.Endpoint, "/"), ss.cfg.Storage.Bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+ss.cfg.Storage.ServiceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := ss.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", lib.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		ss.logger.Error("Storage upload rejected",
			gecho.Field("status", resp.StatusCode),
			gecho.Field("body", string(body)))
		return "", fmt.Errorf("%w: storage returned status %d", lib.ErrUpstream, resp.StatusCode)
	}

	url := fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(ss.cfg.Storage.PublicBaseURL, "/"), ss.cfg.Storage.Bucket, key)

	ss.logger.Info("Uploaded object", gecho.Field("key", key), gecho.Field("size", len(data)))
	return url, nil
}

// sanitizeFilename strips the extension and everything that is not safe in
// an object key, keeping a short recognizable stem.
func sanitizeFilename(filename string) string {
	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	var b strings.Builder
	for _, r := range strings.ToLower(stem) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
