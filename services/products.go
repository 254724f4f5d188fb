package services

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"vitrine/models"
	"vitrine/store"
)

const productsCollection = "products"

type productDocument struct {
	Products []models.Product `json:"products"`
}

// ProductForm carries the raw form fields of an add or edit submission.
// Price stays a string until the service validates it.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Category    string
	Sizes       []string
}

// ProductService manages the product collection. Identifiers are assigned
// as max existing id + 1 and are never reused after a delete.
type ProductService struct {
	store store.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewProductService(s store.Store) *ProductService {
	return &ProductService{store: s, now: time.Now}
}

func (s *ProductService) load() (*productDocument, error) {
	doc := &productDocument{Products: []models.Product{}}
	if err := s.store.Load(productsCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return doc, nil
}

// List returns all products in insertion order.
func (s *ProductService) List() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (s *ProductService) Get(id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Products {
		if doc.Products[i].ID == id {
			p := doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func validateForm(form ProductForm) (float64, error) {
	if form.Name == "" || form.Description == "" || form.Price == "" || form.Category == "" {
		return 0, ErrValidation
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return 0, ErrValidation
	}
	return price, nil
}

// Create validates the form, assigns the next id and stores the product.
// imagePath is required; it is the relative asset path of the uploaded image.
func (s *ProductService) Create(form ProductForm, imagePath string) (*models.Product, error) {
	if imagePath == "" {
		return nil, ErrValidation
	}
	price, err := validateForm(form)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, p := range doc.Products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := models.Product{
		ID:          maxID + 1,
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Category:    form.Category,
		Sizes:       form.Sizes,
		Image:       imagePath,
		CreatedAt:   s.now(),
	}
	doc.Products = append(doc.Products, product)

	if err := s.store.Save(productsCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	return &product, nil
}

// Update replaces the mutable fields of an existing product. An empty
// imagePath keeps the current image; id and created_at never change.
func (s *ProductService) Update(id int, form ProductForm, imagePath string) (*models.Product, error) {
	price, err := validateForm(form)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Products {
		if doc.Products[i].ID != id {
			continue
		}

		doc.Products[i].Name = form.Name
		doc.Products[i].Description = form.Description
		doc.Products[i].Price = price
		doc.Products[i].Category = form.Category
		doc.Products[i].Sizes = form.Sizes
		if imagePath != "" {
			doc.Products[i].Image = imagePath
		}

		if err := s.store.Save(productsCollection, doc); err != nil {
			return nil, fmt.Errorf("failed to save products: %w", err)
		}

		p := doc.Products[i]
		return &p, nil
	}

	return nil, ErrNotFound
}

// Delete removes the product with the given id. Deleting an absent id
// returns ErrNotFound, but the collection is unchanged either way and
// callers are free to treat it as success.
func (s *ProductService) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	kept := doc.Products[:0]
	found := false
	for _, p := range doc.Products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}

	if !found {
		return ErrNotFound
	}

	doc.Products = kept
	if err := s.store.Save(productsCollection, doc); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	return nil
}
