package items

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Lelo88/items-web-golang/internal/faults"
)

// DB es el subconjunto de pgxpool.Pool que usa el repositorio.
// Una interfaz chica permite testear con fakes sin DB real.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository accede a la tabla items.
// Contiene SQL, mapeo DB → modelo y el merge de updates parciales.
// Toda falla del store sale envuelta como faults.StoreError; "no
// encontrado" es resultado vacío (nil / false), nunca error.
type Repository struct {
	database DB
}

// NewRepository crea un repositorio de items.
func NewRepository(database DB) *Repository {
	return &Repository{database: database}
}

// List devuelve todos los items ordenados por id ascendente.
// Tabla vacía => slice vacío, no error.
func (repository *Repository) List(ctx context.Context) ([]Item, error) {
	const query = `
		SELECT id, name, description, quantity, price::float8, created_at
		FROM items
		ORDER BY id;
	`

	rows, err := repository.database.Query(ctx, query)
	if err != nil {
		return nil, faults.Store(err)
	}
	defer rows.Close()

	list := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			return nil, faults.Store(err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, faults.Store(err)
	}

	return list, nil
}

// GetByID devuelve el item con ese id, o nil si no existe.
func (repository *Repository) GetByID(ctx context.Context, id int) (*Item, error) {
	const query = `
		SELECT id, name, description, quantity, price::float8, created_at
		FROM items
		WHERE id = $1;
	`

	var item Item
	err := repository.database.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Quantity, &item.Price, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, faults.Store(err)
	}

	return &item, nil
}

// Insert crea un item y devuelve el registro persistido.
// Quantity/Price ausentes se resuelven a 0 / 0.0 acá, no quedan NULL.
// Usamos RETURNING para obtener id y created_at generados por DB.
func (repository *Repository) Insert(ctx context.Context, input CreateItemInput) (Item, error) {
	const query = `
		INSERT INTO items (name, description, quantity, price)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING id, name, description, quantity, price::float8, created_at;
	`

	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	price := 0.0
	if input.Price != nil {
		price = *input.Price
	}

	var item Item
	err := repository.database.QueryRow(ctx, query, input.Name, input.Description, quantity, price).
		Scan(&item.ID, &item.Name, &item.Description, &item.Quantity, &item.Price, &item.CreatedAt)
	if err != nil {
		return Item{}, faults.Store(err)
	}

	return item, nil
}

// Update hace read-merge-write: lee la fila, pisa los campos que el
// input trae y escribe los cuatro campos mutables de una.
// Devuelve nil si el id no existe.
//
// El read y el write van en una transacción con SELECT ... FOR UPDATE
// para que dos updates concurrentes al mismo id no se pisen cambios.
func (repository *Repository) Update(ctx context.Context, id int, input UpdateItemInput) (*Item, error) {
	const selectQuery = `
		SELECT id, name, description, quantity, price::float8, created_at
		FROM items
		WHERE id = $1
		FOR UPDATE;
	`
	const updateQuery = `
		UPDATE items
		SET name = $1, description = $2, quantity = $3, price = $4::numeric
		WHERE id = $5
		RETURNING id, name, description, quantity, price::float8, created_at;
	`

	tx, err := repository.database.Begin(ctx)
	if err != nil {
		return nil, faults.Store(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current Item
	err = tx.QueryRow(ctx, selectQuery, id).
		Scan(&current.ID, &current.Name, &current.Description, &current.Quantity, &current.Price, &current.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, faults.Store(err)
	}

	merged := merge(current, input)

	var updated Item
	err = tx.QueryRow(ctx, updateQuery, merged.Name, merged.Description, merged.Quantity, merged.Price, id).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Quantity, &updated.Price, &updated.CreatedAt)
	if err != nil {
		return nil, faults.Store(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, faults.Store(err)
	}

	return &updated, nil
}

// merge aplica el input sobre el estado actual campo por campo.
func merge(current Item, input UpdateItemInput) Item {
	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Description != nil {
		current.Description = input.Description
	}
	if input.Quantity != nil {
		current.Quantity = *input.Quantity
	}
	if input.Price != nil {
		current.Price = *input.Price
	}
	return current
}

// Delete elimina la fila si existe. Devuelve true si borró algo;
// false si el id no existía (no es error).
func (repository *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repository.database.Exec(ctx, `DELETE FROM items WHERE id = $1;`, id)
	if err != nil {
		return false, faults.Store(err)
	}
	return tag.RowsAffected() > 0, nil
}
