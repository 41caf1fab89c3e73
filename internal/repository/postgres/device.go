package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devstock/devices-server/internal/model"
)

var _ model.DeviceStore = (*DeviceRepository)(nil)

type DeviceRepository struct {
	db *Connection
}

func NewDeviceRepository(db *Connection) *DeviceRepository {
	return &DeviceRepository{
		db: db,
	}
}

const deviceColumns = `id, device_name, description, serial_number, manufacturer, image_path, holder_id, created_at, updated_at`

func scanDevice(row pgx.Row) (model.Device, error) {
	var device model.Device
	err := row.Scan(
		&device.ID, &device.Name, &device.Description, &device.SerialNumber,
		&device.Manufacturer, &device.ImagePath, &device.HolderID,
		&device.CreatedAt, &device.UpdatedAt,
	)
	return device, err
}

func (r *DeviceRepository) Create(ctx context.Context, device model.Device) (model.Device, error) {
	query := `INSERT INTO devices (id, device_name, description, serial_number, manufacturer)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + deviceColumns

	saved, err := scanDevice(r.db.QueryRow(ctx, query,
		device.ID, device.Name, device.Description, device.SerialNumber, device.Manufacturer,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Device{}, model.ErrConflict
		}
		return model.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return saved, nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device, err := scanDevice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Device{}, model.ErrNotFound
		}
		return model.Device{}, fmt.Errorf("failed to get device by id: %w", err)
	}

	return device, nil
}

func (r *DeviceRepository) List(ctx context.Context) ([]model.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	return collectDevices(rows)
}

// Update overwrites the four descriptive fields unconditionally. Concurrent
// updates are last-writer-wins.
func (r *DeviceRepository) Update(ctx context.Context, id uuid.UUID, fields model.DeviceFields) error {
	query := `UPDATE devices
			  SET device_name = $1, description = $2, serial_number = $3, manufacturer = $4, updated_at = NOW()
			  WHERE id = $5`

	cmd, err := r.db.Exec(ctx, query, fields.Name, fields.Description, fields.SerialNumber, fields.Manufacturer, id)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to update device: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM devices WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *DeviceRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	const query = `UPDATE devices SET image_path = $1, updated_at = NOW() WHERE id = $2`

	cmd, err := r.db.Exec(ctx, query, path, id)
	if err != nil {
		return fmt.Errorf("failed to set device image path: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Checkout assigns the device to a user in a single conditional update. The
// holder_id IS NULL predicate is what upholds the at-most-one-holder
// invariant: of two concurrent checkouts exactly one matches the predicate,
// the other affects zero rows and fails with ErrNotAvailable. The guarantee
// comes from the database's row-level atomicity and therefore holds across
// multiple server processes sharing the store.
func (r *DeviceRepository) Checkout(ctx context.Context, deviceID, userID uuid.UUID) error {
	const query = `UPDATE devices SET holder_id = $1, updated_at = NOW()
				   WHERE id = $2 AND holder_id IS NULL`

	cmd, err := r.db.Exec(ctx, query, userID, deviceID)
	if err != nil {
		return fmt.Errorf("failed to checkout device: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Absent or already checked out; indistinguishable on purpose.
		return model.ErrNotAvailable
	}
	return nil
}

// Checkin clears the holder with the same conditional-update shape as
// Checkout, so a concurrent checkout cannot slip between a read and a write.
func (r *DeviceRepository) Checkin(ctx context.Context, deviceID uuid.UUID) error {
	const query = `UPDATE devices SET holder_id = NULL, updated_at = NOW()
				   WHERE id = $1 AND holder_id IS NOT NULL`

	cmd, err := r.db.Exec(ctx, query, deviceID)
	if err != nil {
		return fmt.Errorf("failed to checkin device: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotCheckedOut
	}
	return nil
}

func (r *DeviceRepository) ListByHolder(ctx context.Context, userID uuid.UUID) ([]model.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE holder_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices by holder: %w", err)
	}
	defer rows.Close()

	return collectDevices(rows)
}

func collectDevices(rows pgx.Rows) ([]model.Device, error) {
	var devices []model.Device
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}
