package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ClientService manages the client register and the per-client items
// sub-ledger (miscellaneous goods handed out on a date). Client names are
// unique case-insensitively; unlike customers they are entered explicitly
// on a settings screen, so a clash is reported rather than merged.
type ClientService interface {
	ListClients(ctx context.Context) ([]Client, error)
	GetClient(ctx context.Context, id int) (*Client, error)
	AddClient(ctx context.Context, name, phone string) (*Client, error)
	UpdateClient(ctx context.Context, id int, name, phone string) error
	DeleteClient(ctx context.Context, id int) error

	AddItem(ctx context.Context, clientID int, itemName string, quantity decimal.Decimal, date string) (*ClientItem, error)
	DeleteItem(ctx context.Context, id int) error
	ListItems(ctx context.Context, clientID int) ([]ClientItem, error)
	ListItemsByDate(ctx context.Context, date string) ([]ClientItem, error)
}

type clientService struct {
	pool *pgxpool.Pool
}

// NewClientService constructs a ClientService backed by PostgreSQL.
func NewClientService(pool *pgxpool.Pool) ClientService {
	return &clientService{pool: pool}
}

func (s *clientService) clientNameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check client name: %w", err)
	}
	return exists, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, phone, created_at, updated_at FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *clientService) GetClient(ctx context.Context, id int) (*Client, error) {
	c := &Client{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, phone, created_at, updated_at FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

func (s *clientService) AddClient(ctx context.Context, name, phone string) (*Client, error) {
	name = TrimName(name)
	if name == "" {
		return nil, fmt.Errorf("client name must not be empty")
	}
	taken, err := s.clientNameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	var phonePtr *string
	if phone != "" {
		phonePtr = &phone
	}

	c := &Client{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO clients (name, phone) VALUES ($1, $2)
		RETURNING id, name, phone, created_at, updated_at`,
		name, phonePtr,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert client %q: %w", name, err)
	}
	return c, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id int, name, phone string) error {
	name = TrimName(name)
	if name == "" {
		return fmt.Errorf("client name must not be empty")
	}
	taken, err := s.clientNameTaken(ctx, name, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}

	var phonePtr *string
	if phone != "" {
		phonePtr = &phone
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE clients SET name = $1, phone = $2, updated_at = NOW() WHERE id = $3`,
		name, phonePtr, id)
	if err != nil {
		return fmt.Errorf("update client %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *clientService) DeleteClient(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

func (s *clientService) AddItem(ctx context.Context, clientID int, itemName string, quantity decimal.Decimal, date string) (*ClientItem, error) {
	itemName = TrimName(itemName)
	if itemName == "" {
		return nil, fmt.Errorf("item name must not be empty")
	}

	item := &ClientItem{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO client_items (client_id, item_name, quantity, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, client_id, item_name, quantity, date::text, created_at`,
		clientID, itemName, quantity, date,
	).Scan(&item.ID, &item.ClientID, &item.ItemName, &item.Quantity, &item.Date, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert client item: %w", err)
	}
	return item, nil
}

func (s *clientService) DeleteItem(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM client_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client item %d: %w", id, err)
	}
	return nil
}

func (s *clientService) ListItems(ctx context.Context, clientID int) ([]ClientItem, error) {
	return s.listItems(ctx, `WHERE ci.client_id = $1`, clientID)
}

func (s *clientService) ListItemsByDate(ctx context.Context, date string) ([]ClientItem, error) {
	return s.listItems(ctx, `WHERE ci.date = $1`, date)
}

func (s *clientService) listItems(ctx context.Context, where string, arg any) ([]ClientItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT ci.id, ci.client_id, c.name, ci.item_name, ci.quantity, ci.date::text, ci.created_at
		FROM client_items ci
		JOIN clients c ON c.id = ci.client_id
		`+where+`
		ORDER BY ci.created_at`,
		arg)
	if err != nil {
		return nil, fmt.Errorf("list client items: %w", err)
	}
	defer rows.Close()

	var items []ClientItem
	for rows.Next() {
		var item ClientItem
		if err := rows.Scan(&item.ID, &item.ClientID, &item.ClientName, &item.ItemName,
			&item.Quantity, &item.Date, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
