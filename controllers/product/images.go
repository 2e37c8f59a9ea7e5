package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// ImageStore writes product images to the uploads directory served under
// /uploads/products and builds their public URLs.
type ImageStore struct {
	Dir     string
	BaseURL string
}

func NewImageStore(dir, baseURL string) *ImageStore {
	return &ImageStore{Dir: dir, BaseURL: baseURL}
}

// Save stores one uploaded file under a generated id and returns its
// reference. The original filename is kept for display only.
func (s *ImageStore) Save(c *gin.Context, file *multipart.FileHeader) (models.ProductImage, error) {
	id := uuid.NewString()
	filename := id + filepath.Ext(file.Filename)

	saveDir := filepath.Join(s.Dir, "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return models.ProductImage{}, fmt.Errorf("create upload folder: %w", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return models.ProductImage{}, fmt.Errorf("save image: %w", err)
	}

	return models.ProductImage{
		ID:   id,
		Name: file.Filename,
		URL:  fmt.Sprintf("%s/uploads/products/%s", s.BaseURL, filename),
	}, nil
}

// Delete removes the stored file behind an image reference. Missing files
// are not an error.
func (s *ImageStore) Delete(image models.ProductImage) error {
	parsed, err := url.Parse(image.URL)
	if err != nil {
		return err
	}
	path := filepath.Join(s.Dir, "products", filepath.Base(parsed.Path))

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
