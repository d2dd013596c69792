package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
	"github.com/cosmelog/cosme-review-api/internal/domain/repository"
)

type ProductRepositoryImpl struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewProductRepository(db *sql.DB, logger *logrus.Logger) repository.ProductRepository {
	return &ProductRepositoryImpl{db: db, logger: logger}
}

func (r *ProductRepositoryImpl) Save(ctx context.Context, product *entity.Product) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, manufacturer, category, ingredients, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		product.Name, product.Manufacturer, string(product.Category),
		encodeIngredients(product.Ingredients), product.ImageURL, formatTime(product.CreatedAt),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, manufacturer, category, ingredients, image_url, created_at
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		// Rows with a category this build does not know are skipped so one
		// bad row cannot break the whole listing.
		if !entity.ValidCategory(string(p.Category)) {
			r.logger.WithFields(logrus.Fields{
				"product_id": p.ID,
				"category":   string(p.Category),
			}).Warn("skipping product with unknown category")
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, manufacturer, category, ingredients, image_url, created_at
		 FROM products WHERE id = ?`, id,
	)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !entity.ValidCategory(string(p.Category)) {
		r.logger.WithFields(logrus.Fields{
			"product_id": p.ID,
			"category":   string(p.Category),
		}).Warn("hiding product with unknown category")
		return nil, nil
	}
	return p, nil
}

func (r *ProductRepositoryImpl) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET image_url = ? WHERE id = ?`, imageURL, id)
	return err
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var category, ingredients, createdAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Manufacturer, &category, &ingredients, &p.ImageURL, &createdAt); err != nil {
		return nil, err
	}
	p.Category = entity.Category(category)
	p.Ingredients = decodeIngredients(ingredients)
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

// Ingredients are stored as a single comma-joined TEXT column; an empty
// column decodes to an empty slice, not [""].
func encodeIngredients(ingredients []string) string {
	return strings.Join(ingredients, ",")
}

func decodeIngredients(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
