package product

import (
	"errors"
	"fmt"
	"io"

	"github.com/greenbasket/grocery-backend/internal/upload"
)

var ErrImageCount = errors.New("a product needs between 1 and 4 images")

// ImageUpload is one pending product image. Content is consumed when the
// image is stored.
type ImageUpload struct {
	Name    string
	Content io.Reader
}

type Service struct {
	repo    Repository
	uploads upload.Store
}

func NewService(repo Repository, uploads upload.Store) *Service {
	return &Service{repo: repo, uploads: uploads}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Create stores the product images one after another, collecting their URLs
// in upload order, and only then writes the product itself. A failed upload
// aborts the whole creation, so a partial product is never written. Uploads
// are deliberately sequential to keep the URL list in file-selection order.
func (s *Service) Create(p Product, images []ImageUpload) (Product, error) {
	if len(images) < MinImages || len(images) > MaxImages {
		return Product{}, ErrImageCount
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploads.Save(img.Name, img.Content)
		if err != nil {
			return Product{}, fmt.Errorf("upload %s: %w", img.Name, err)
		}
		urls = append(urls, url)
	}

	p.ImageURLs = urls
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}
