package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
)

const createItemsTable = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	item_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	quantity INTEGER NOT NULL DEFAULT 0,
	price REAL NOT NULL DEFAULT 0,
	category TEXT NOT NULL,
	supplier TEXT NOT NULL,
	low_stock_alert INTEGER NOT NULL DEFAULT 5,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE (user_id, item_name)
);
`

// sortColumns whitelists client-facing sort keys against schema columns.
var sortColumns = map[string]string{
	"itemName":      "item_name",
	"quantity":      "quantity",
	"price":         "price",
	"category":      "category",
	"supplier":      "supplier",
	"lowStockAlert": "low_stock_alert",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createItemsTable); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (int64, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO items (user_id, item_name, description, quantity, price, category, supplier, low_stock_alert, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.UserID,
		item.ItemName,
		item.Description,
		item.Quantity,
		item.Price,
		item.Category,
		item.Supplier,
		item.LowStockAlert,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("insert item: %w", repository.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE items
SET item_name=?, description=?, quantity=?, price=?, category=?, supplier=?, low_stock_alert=?, updated_at=?
WHERE id=? AND user_id=?`,
		item.ItemName,
		item.Description,
		item.Quantity,
		item.Price,
		item.Category,
		item.Supplier,
		item.LowStockAlert,
		item.UpdatedAt,
		item.ID,
		item.UserID,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fmt.Errorf("update item: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Get(ctx context.Context, userID, id int64) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, item_name, description, quantity, price, category, supplier, low_stock_alert, created_at, updated_at
FROM items
WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	return scanItem(row)
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, item_name, description, quantity, price, category, supplier, low_stock_alert, created_at, updated_at
FROM items
WHERE user_id = ?
ORDER BY item_name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) Search(ctx context.Context, userID int64, filter repository.ItemFilter) ([]domain.Item, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT id, user_id, item_name, description, quantity, price, category, supplier, low_stock_alert, created_at, updated_at
FROM items
WHERE user_id = ?`)
	args := []any{userID}

	if filter.Query != "" {
		query.WriteString(` AND (item_name LIKE '%' || ? || '%' COLLATE NOCASE OR description LIKE '%' || ? || '%' COLLATE NOCASE)`)
		args = append(args, filter.Query, filter.Query)
	}
	if filter.Category != "" {
		query.WriteString(` AND category = ?`)
		args = append(args, filter.Category)
	}

	orderBy := "item_name"
	if col, ok := sortColumns[filter.SortBy]; ok {
		orderBy = col
	}
	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}
	query.WriteString(fmt.Sprintf(" ORDER BY %s %s", orderBy, direction))

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) ListLowStock(ctx context.Context, userID int64) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, item_name, description, quantity, price, category, supplier, low_stock_alert, created_at, updated_at
FROM items
WHERE user_id = ? AND quantity <= low_stock_alert
ORDER BY item_name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) Stats(ctx context.Context, userID int64) (*domain.InventoryStats, error) {
	stats := &domain.InventoryStats{}
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(quantity), 0),
       COALESCE(SUM(quantity * price), 0),
       COALESCE(SUM(CASE WHEN quantity <= low_stock_alert THEN 1 ELSE 0 END), 0)
FROM items
WHERE user_id = ?`,
		userID,
	).Scan(&stats.TotalItems, &stats.TotalQuantity, &stats.TotalValue, &stats.LowStockCount)
	if err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT category, SUM(quantity), SUM(quantity * price)
FROM items
WHERE user_id = ?
GROUP BY category
ORDER BY category`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory category stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cs domain.CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Quantity, &cs.Value); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		stats.Categories = append(stats.Categories, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category stats: %w", err)
	}
	return stats, nil
}

func scanItem(row interface {
	Scan(dest ...any) error
}) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ItemName,
		&item.Description,
		&item.Quantity,
		&item.Price,
		&item.Category,
		&item.Supplier,
		&item.LowStockAlert,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ItemName,
			&item.Description,
			&item.Quantity,
			&item.Price,
			&item.Category,
			&item.Supplier,
			&item.LowStockAlert,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
