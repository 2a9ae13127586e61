package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
)

type CatalogRepository struct {
	DB postgres.DBInterface
}

func NewCatalogRepository(db postgres.DBInterface) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

const productColumns = `
	id, restaurant_id, category_id, name, description, price, image_url,
	is_available, display_order`

func (r *CatalogRepository) ListCategories(ctx context.Context, restaurantID int64) ([]entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var categories []entity.Category
	query := `
		SELECT id, restaurant_id, name, display_order, is_active
		FROM categories
		WHERE restaurant_id = $1 AND is_active = true
		ORDER BY display_order`
	if err := db.SelectContext(ctx, &categories, query, restaurantID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context, restaurantID int64, categoryID *int64) ([]entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var products []entity.Product
	if categoryID != nil {
		query := fmt.Sprintf(`SELECT %s FROM products WHERE restaurant_id = $1 AND category_id = $2 ORDER BY display_order`, productColumns)
		if err := db.SelectContext(ctx, &products, query, restaurantID, *categoryID); err != nil {
			return nil, err
		}
		return products, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE restaurant_id = $1 ORDER BY display_order`, productColumns)
	if err := db.SelectContext(ctx, &products, query, restaurantID); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProduct loads the product with its options and option values.
func (r *CatalogRepository) FindProduct(ctx context.Context, id int64) (*entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product entity.Product
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	if err := db.GetContext(ctx, &product, query, id); err != nil {
		return nil, err
	}

	var options []entity.ProductOption
	optQuery := `
		SELECT id, product_id, name, is_required, min_selection, max_selection, display_order
		FROM product_options
		WHERE product_id = $1
		ORDER BY display_order`
	if err := db.SelectContext(ctx, &options, optQuery, id); err != nil {
		return nil, err
	}

	for i := range options {
		var values []entity.ProductOptionValue
		valQuery := `
			SELECT id, option_id, value, price_adjustment, display_order
			FROM product_option_values
			WHERE option_id = $1
			ORDER BY display_order`
		if err := db.SelectContext(ctx, &values, valQuery, options[i].ID); err != nil {
			return nil, err
		}
		options[i].Values = values
	}
	product.Options = options

	return &product, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product *entity.Product) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id int64
	query := `
		INSERT INTO products (restaurant_id, category_id, name, description, price, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		product.RestaurantID, product.CategoryID, product.Name, product.Description,
		product.Price, product.ImageURL, product.IsAvailable,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := db.ExecContext(ctx, `
		UPDATE products
		SET restaurant_id = $1, category_id = $2, name = $3, description = $4,
		    price = $5, image_url = $6, is_available = $7
		WHERE id = $8`,
		product.RestaurantID, product.CategoryID, product.Name, product.Description,
		product.Price, product.ImageURL, product.IsAvailable, product.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
