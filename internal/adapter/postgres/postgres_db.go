package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

const bicycleColumns = `id, brand, model, type, color, price, image`

type BicycleRepository struct {
	db *sql.DB
}

func NewBicycleRepository(db *sql.DB) *BicycleRepository {
	return &BicycleRepository{
		db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBicycle(row rowScanner) (*domain.Bicycle, error) {
	var id int64
	bicycle := &domain.Bicycle{}
	err := row.Scan(
		&id,
		&bicycle.Brand,
		&bicycle.Model,
		&bicycle.Type,
		&bicycle.Color,
		&bicycle.Price,
		&bicycle.Image,
	)
	if err != nil {
		return nil, err
	}
	bicycle.ID = domain.BicycleID(strconv.FormatInt(id, 10))
	return bicycle, nil
}

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23502":
			return fmt.Errorf("required field is missing")
		case "22001":
			return fmt.Errorf("value too long: %s", pqErr.Message)
		}
	}
	return err
}

func (r *BicycleRepository) CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	query := `INSERT INTO bicycles (brand, model, type, color, price, image)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + bicycleColumns

	created, err := scanBicycle(r.db.QueryRowContext(ctx, query,
		bicycle.Brand,
		bicycle.Model,
		bicycle.Type,
		bicycle.Color,
		float64(bicycle.Price),
		bicycle.Image,
	))
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

func (r *BicycleRepository) GetBicycleByID(ctx context.Context, id int64) (*domain.Bicycle, error) {
	query := `SELECT ` + bicycleColumns + ` FROM bicycles WHERE id = $1`

	bicycle, err := scanBicycle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBicycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return bicycle, nil
}

func (r *BicycleRepository) ListBicycles(ctx context.Context) ([]*domain.Bicycle, error) {
	query := `SELECT ` + bicycleColumns + ` FROM bicycles ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bicycles := []*domain.Bicycle{}
	for rows.Next() {
		bicycle, err := scanBicycle(rows)
		if err != nil {
			return nil, err
		}
		bicycles = append(bicycles, bicycle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bicycles, nil
}

// UpdateBicycle overwrites every column; empty values are stored as given.
func (r *BicycleRepository) UpdateBicycle(ctx context.Context, id int64, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	query := `UPDATE bicycles
		SET
			brand = $1,
			model = $2,
			type = $3,
			color = $4,
			price = $5,
			image = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING ` + bicycleColumns

	updated, err := scanBicycle(r.db.QueryRowContext(ctx, query,
		bicycle.Brand,
		bicycle.Model,
		bicycle.Type,
		bicycle.Color,
		float64(bicycle.Price),
		bicycle.Image,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBicycleNotFound
		}
		return nil, fmt.Errorf("error updating bicycle: %w", translateError(err))
	}
	return updated, nil
}

func (r *BicycleRepository) DeleteBicycle(ctx context.Context, id int64) error {
	query := `DELETE FROM bicycles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrBicycleNotFound
	}
	return nil
}
