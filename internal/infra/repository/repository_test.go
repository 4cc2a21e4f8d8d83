package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	"github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestRentalGormRepository_ListFinalizedRentals(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewRentalGormRepository(gdb)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "rentals" WHERE status = \$1 ORDER BY actual_return_date DESC`).
		WithArgs("Finalizada").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "vehicle_id", "start_date", "status", "actual_return_date", "final_price",
		}).
			AddRow(2, 5, 9, start, "Finalizada", newer, 720.0).
			AddRow(1, 5, 9, start, "Finalizada", older, 270.0))

	mock.ExpectQuery(`FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(5, "ana@vivacar.com", "cliente"))

	mock.ExpectQuery(`FROM "vehicles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "plate", "status", "daily_rate"}).
			AddRow(9, "Onix", "ABC1D23", "Disponivel", 90.0))

	rentals, err := repo.ListFinalizedRentals(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 2)

	assert.Equal(t, uint(2), rentals[0].ID)
	assert.Equal(t, "ana@vivacar.com", rentals[0].Customer.Email)
	assert.Equal(t, "ABC1D23", rentals[1].Vehicle.Plate)
	require.NotNil(t, rentals[1].FinalPrice)
	assert.Equal(t, 270.0, *rentals[1].FinalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalGormRepository_WithinTx_Rollback(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRentalGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := repo.WithinTx(context.Background(), func(tx domain.Repository) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalGormRepository_WithinTx_OpenCommits(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRentalGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE "vehicles"\."id" = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "plate", "status", "daily_rate"}).
			AddRow(9, "Onix", "ABC1D23", "Disponivel", 80.0))
	mock.ExpectQuery(`INSERT INTO "rentals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE "vehicles" SET "status"=\$1,"updated_at"=\$2 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	var created *models.Rental
	err := repo.WithinTx(context.Background(), func(tx domain.Repository) error {
		car, err := tx.GetVehicleForUpdate(context.Background(), 9)
		if err != nil {
			return err
		}
		r, err := domain.Open(5, car, start, end, nil)
		if err != nil {
			return err
		}
		if err := tx.CreateRental(context.Background(), r); err != nil {
			return err
		}
		created = r
		return tx.SaveVehicleStatus(context.Background(), car)
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(11), created.ID)
	assert.Equal(t, 400.0, created.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGormRepository_FindByLogin(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAccountGormRepository(gdb)

	mock.ExpectQuery(`FROM "accounts" WHERE .*email = \$1 OR cpf = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "cpf", "role"}).
			AddRow(4, "ana@vivacar.com", "123.456.789-09", "cliente"))

	acc, err := repo.FindByLogin(context.Background(), "123.456.789-09")
	require.NoError(t, err)

	assert.Equal(t, uint(4), acc.ID)
	require.NotNil(t, acc.CPF)
	assert.Equal(t, "123.456.789-09", *acc.CPF)
}

func TestVehicleGormRepository_ListVehiclesByStatus(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVehicleGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE status = \$1 ORDER BY model ASC`).
		WithArgs("Disponivel").
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "plate", "status"}).
			AddRow(1, "HB20", "AAA1111", "Disponivel").
			AddRow(2, "Onix", "BBB2222", "Disponivel"))

	vehicles, err := repo.ListVehiclesByStatus(context.Background(), vehicle.StatusAvailable)
	require.NoError(t, err)

	assert.Len(t, vehicles, 2)
	assert.Equal(t, "HB20", vehicles[0].Model)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleGormRepository_UpdateVehicleDetails_SkipsStatus(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVehicleGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "vehicles" SET "model"=\$1,"plate"=\$2,"group"=\$3,"year"=\$4,"daily_rate"=\$5,"photo_url"=\$6,"updated_at"=\$7 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateVehicleDetails(context.Background(), &models.Vehicle{
		ID: 9, Model: "Onix Plus", Plate: "ABC1D23", Status: "Disponivel", DailyRate: 110,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleGormRepository_UpdateVehicleDetails_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVehicleGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "vehicles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateVehicleDetails(context.Background(), &models.Vehicle{ID: 404, Model: "Onix", Plate: "ABC1D23"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
