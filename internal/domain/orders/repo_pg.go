package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medikart/medikart/internal/domain/catalog"
	"github.com/medikart/medikart/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type orderRepoPG struct{ pool *pgxpool.Pool }

func NewOrderRepoPG(pool *pgxpool.Pool) OrderRepository {
	return &orderRepoPG{pool: pool}
}

func (r *orderRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const orderCols = `id, user_id, status, total_amount, shipping_address,
	contact_phone, notes, created_at, updated_at`

func (r *orderRepoPG) scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.ShippingAddress,
		&o.ContactPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.StatusColor = StatusColor(o.Status)
	return &o, nil
}

func (r *orderRepoPG) Create(ctx context.Context, o *Order) error {
	o.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO orders (id, user_id, status, total_amount, shipping_address, contact_phone, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		o.ID, o.UserID, o.Status, o.TotalAmount, o.ShippingAddress, o.ContactPhone, o.Notes)
	if err != nil {
		return err
	}
	for _, item := range o.Items {
		item.ID = uuid.New()
		item.OrderID = o.ID
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO order_items (id, order_id, medicine_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, item.OrderID, item.MedicineID, item.Quantity, item.Price)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := r.scanOrder(r.conn(ctx).QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *orderRepoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Order, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+orderCols+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return r.collectOrders(ctx, rows, total)
}

func (r *orderRepoPG) ListAll(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return r.collectOrders(ctx, rows, total)
}

func (r *orderRepoPG) collectOrders(ctx context.Context, rows pgx.Rows, total int) ([]*Order, int, error) {
	defer rows.Close()
	var items []*Order
	var ids []uuid.UUID
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) > 0 {
		byOrder, err := r.loadItems(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, o := range items {
			o.Items = byOrder[o.ID]
		}
	}
	return items, total, nil
}

// loadItems fetches the lines for a batch of orders in one query, each line
// joined with its medicine.
func (r *orderRepoPG) loadItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]*OrderItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT oi.id, oi.order_id, oi.medicine_id, oi.quantity, oi.price,
			m.id, m.name, m.slug, m.description, m.price, m.stock, m.category_id,
			m.manufacturer, m.dosage, m.image_url, m.prescription_required, m.active,
			m.created_at, m.updated_at
		FROM order_items oi
		JOIN medicines m ON m.id = oi.medicine_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]*OrderItem)
	for rows.Next() {
		var item OrderItem
		var m catalog.Medicine
		err := rows.Scan(&item.ID, &item.OrderID, &item.MedicineID, &item.Quantity, &item.Price,
			&m.ID, &m.Name, &m.Slug, &m.Description, &m.Price, &m.Stock, &m.CategoryID,
			&m.Manufacturer, &m.Dosage, &m.ImageURL, &m.PrescriptionRequired, &m.Active,
			&m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		item.Medicine = &m
		result[item.OrderID] = append(result[item.OrderID], &item)
	}
	return result, rows.Err()
}

func (r *orderRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	return err
}
