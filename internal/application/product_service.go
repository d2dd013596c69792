package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	repo "github.com/cosmelog/cosme-review-api/internal/domain/repository"
	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

const productListCacheKey = "products:all"
const productListCacheTTL = 30 * time.Second

type ProductService struct {
	Repo            repo.ProductRepository
	Redis           *redis.Client
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESProductsIndex string
	GCS             *storage.Client
	GCSBucket       string
}

func NewProductService(repo repo.ProductRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esProductsIndex string, gcs *storage.Client, gcsBucket string) *ProductService {
	return &ProductService{
		Repo:            repo,
		Redis:           rdb,
		Logger:          logger,
		ES:              es,
		ESProductsIndex: esProductsIndex,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
	}
}

func (s *ProductService) Create(ctx context.Context, name, manufacturer, category string, ingredients []string) (*entity.Product, error) {
	p, err := entity.NewProduct(name, manufacturer, category, ingredients)
	if err != nil {
		if errors.Is(err, entity.ErrUndefinedCategory) {
			return nil, apperrors.NewValidation("Undefined category: " + category)
		}
		return nil, apperrors.NewInternal("Failed to build product", err)
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, apperrors.NewInternal("Failed to save product", err)
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, productListCacheKey)
	}
	_ = s.indexProduct(ctx, p)
	return p, nil
}

// List serves the full catalogue from a short-lived Redis cache when
// possible and falls back to the database.
func (s *ProductService) List(ctx context.Context) ([]*entity.Product, error) {
	if s.Redis != nil {
		var cached []*entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, productListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	products, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list products", err)
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, productListCacheKey, products, productListCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("cache product list failed")
		}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to load product", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return p, nil
}

// UploadImage stores the image in GCS under a product-scoped object path
// and records its public URL.
func (s *ProductService) UploadImage(ctx context.Context, id int64, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperrors.NewInternal("Image storage not configured", nil)
	}
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return "", apperrors.NewInternal("Failed to load product", err)
	}
	if p == nil {
		return "", apperrors.NewNotFound("Product not found")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", strconv.FormatInt(id, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperrors.NewInternal("Failed to upload image", err)
	}
	if err := s.Repo.UpdateImageURL(ctx, id, url); err != nil {
		return "", apperrors.NewInternal("Failed to save image URL", err)
	}
	p.ImageURL = url
	_ = s.indexProduct(ctx, p)
	return url, nil
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESProductsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":           p.ID,
		"name":         p.Name,
		"manufacturer": p.Manufacturer,
		"category":     string(p.Category),
		"ingredients":  p.Ingredients,
		"image_url":    p.ImageURL,
		"created_at":   p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProductsIndex, DocumentID: strconv.FormatInt(p.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search queries the product index by name, manufacturer and ingredients.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "manufacturer", "ingredients"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESProductsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, apperrors.NewInternal("Search failed", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewInternal("Search failed", err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
