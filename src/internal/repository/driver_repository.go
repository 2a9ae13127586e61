package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
)

type DriverRepository struct {
	DB postgres.DBInterface
}

func NewDriverRepository(db postgres.DBInterface) *DriverRepository {
	return &DriverRepository{
		DB: db,
	}
}

const driverColumns = `
	id, user_id, full_name, phone, vehicle_type, vehicle_plate, is_active,
	is_available, current_latitude, current_longitude, last_location_update`

func (r *DriverRepository) Create(ctx context.Context, driver *entity.Driver) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id int64
	query := `
		INSERT INTO delivery_drivers (full_name, phone, vehicle_type, vehicle_plate, is_active, is_available)
		VALUES ($1, $2, $3, $4, true, true)
		RETURNING id`
	if err := db.QueryRowxContext(ctx, query,
		driver.FullName, driver.Phone, driver.VehicleType, driver.VehiclePlate,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert driver: %w", err)
	}
	return id, nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64) (*entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var driver entity.Driver
	query := fmt.Sprintf(`SELECT %s FROM delivery_drivers WHERE id = $1`, driverColumns)
	if err := db.GetContext(ctx, &driver, query, id); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) UpdateLocation(ctx context.Context, driverID int64, latitude, longitude string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := db.ExecContext(ctx,
		`UPDATE delivery_drivers
		 SET current_latitude = $1, current_longitude = $2, last_location_update = now()
		 WHERE id = $3`,
		latitude, longitude, driverID)
	if err != nil {
		return fmt.Errorf("update driver location: %w", err)
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

func (r *DriverRepository) ListAvailable(ctx context.Context) ([]entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var drivers []entity.Driver
	query := fmt.Sprintf(`SELECT %s FROM delivery_drivers WHERE is_active = true AND is_available = true`, driverColumns)
	if err := db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, err
	}
	return drivers, nil
}
