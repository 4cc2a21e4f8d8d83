// Package memory implementa os repositórios em memória, com as mesmas regras
// de unicidade e integridade do Postgres. Existe só para os testes de use
// case e de handler; o servidor usa sempre os repositórios gorm.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	accountdomain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	rentaldomain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	vehicledomain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	nextID   uint
	accounts map[uint]models.Account
	vehicles map[uint]models.Vehicle
	rentals  map[uint]models.Rental
}

func NewStore() *Store {
	return &Store{
		accounts: map[uint]models.Account{},
		vehicles: map[uint]models.Vehicle{},
		rentals:  map[uint]models.Rental{},
	}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

type snapshot struct {
	nextID   uint
	accounts map[uint]models.Account
	vehicles map[uint]models.Vehicle
	rentals  map[uint]models.Rental
}

// WithinTx serializa as transações e restaura o estado anterior se fn falhar.
func (s *Store) WithinTx(
	ctx context.Context,
	fn func(tx rentaldomain.Repository) error,
) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(&tx{Store: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// tx reaproveita o Store já travado; WithinTx aninhado roda na mesma transação.
type tx struct {
	*Store
}

func (t *tx) WithinTx(
	ctx context.Context,
	fn func(tx rentaldomain.Repository) error,
) error {
	return fn(t)
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		nextID:   s.nextID,
		accounts: make(map[uint]models.Account, len(s.accounts)),
		vehicles: make(map[uint]models.Vehicle, len(s.vehicles)),
		rentals:  make(map[uint]models.Rental, len(s.rentals)),
	}
	for k, v := range s.accounts {
		snap.accounts[k] = v
	}
	for k, v := range s.vehicles {
		snap.vehicles[k] = v
	}
	for k, v := range s.rentals {
		snap.rentals[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID = snap.nextID
	s.accounts = snap.accounts
	s.vehicles = snap.vehicles
	s.rentals = snap.rentals
}

func (s *Store) newID() uint {
	s.nextID++
	return s.nextID
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (s *Store) GetAccount(ctx context.Context, id uint) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (s *Store) FindByLogin(ctx context.Context, login string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.sortedAccounts() {
		if a.Email == login || (a.CPF != nil && *a.CPF == login) {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *Store) EmailOrCPFTaken(
	ctx context.Context,
	email string,
	cpf *string,
	exceptID uint,
) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accountConflict(email, cpf, exceptID), nil
}

func (s *Store) accountConflict(email string, cpf *string, exceptID uint) bool {
	for id, a := range s.accounts {
		if id == exceptID {
			continue
		}
		if a.Email == email {
			return true
		}
		if cpf != nil && a.CPF != nil && *a.CPF == *cpf {
			return true
		}
	}
	return false
}

func (s *Store) CreateAccount(ctx context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accountConflict(a.Email, a.CPF, 0) {
		return gorm.ErrDuplicatedKey
	}
	if a.Role == "" {
		a.Role = "cliente"
	}

	now := time.Now()
	a.ID = s.newID()
	a.CreatedAt, a.UpdatedAt = now, now
	s.accounts[a.ID] = *a
	return nil
}

func (s *Store) SaveAccount(ctx context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.accountConflict(a.Email, a.CPF, a.ID) {
		return gorm.ErrDuplicatedKey
	}

	a.UpdatedAt = time.Now()
	s.accounts[a.ID] = *a
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rentals {
		if r.CustomerID == a.ID {
			return gorm.ErrForeignKeyViolated
		}
	}
	delete(s.accounts, a.ID)
	return nil
}

func (s *Store) ListAccountsByRole(ctx context.Context, role string) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Account, 0)
	for _, a := range s.sortedAccounts() {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) sortedAccounts() []models.Account {
	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Email != out[j].Email {
			return out[i].Email < out[j].Email
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// --------------------------------------------------
// Vehicles
// --------------------------------------------------

func (s *Store) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

// GetVehicleForUpdate não trava nada além do que WithinTx já serializa.
func (s *Store) GetVehicleForUpdate(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.GetVehicle(ctx, id)
}

func (s *Store) PlateTaken(ctx context.Context, plate string, exceptID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.plateConflict(plate, exceptID), nil
}

func (s *Store) plateConflict(plate string, exceptID uint) bool {
	for id, v := range s.vehicles {
		if id != exceptID && v.Plate == plate {
			return true
		}
	}
	return false
}

func (s *Store) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plateConflict(v.Plate, 0) {
		return gorm.ErrDuplicatedKey
	}
	if v.Status == "" {
		v.Status = string(vehicledomain.InitialStatus())
	}

	now := time.Now()
	v.ID = s.newID()
	v.CreatedAt, v.UpdatedAt = now, now
	s.vehicles[v.ID] = *v
	return nil
}

func (s *Store) UpdateVehicleDetails(ctx context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.vehicles[v.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if s.plateConflict(v.Plate, v.ID) {
		return gorm.ErrDuplicatedKey
	}

	cur.Model = v.Model
	cur.Plate = v.Plate
	cur.Group = v.Group
	cur.Year = v.Year
	cur.DailyRate = v.DailyRate
	cur.PhotoURL = v.PhotoURL
	cur.UpdatedAt = time.Now()
	s.vehicles[v.ID] = cur
	return nil
}

func (s *Store) SaveVehicleStatus(ctx context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.vehicles[v.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	cur.Status = v.Status
	cur.UpdatedAt = time.Now()
	s.vehicles[v.ID] = cur
	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rentals {
		if r.VehicleID == v.ID {
			return gorm.ErrForeignKeyViolated
		}
	}
	delete(s.vehicles, v.ID)
	return nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.listVehicles(func(models.Vehicle) bool { return true }), nil
}

func (s *Store) ListVehiclesByStatus(
	ctx context.Context,
	status vehicledomain.Status,
) ([]models.Vehicle, error) {
	return s.listVehicles(func(v models.Vehicle) bool {
		return v.Status == string(status)
	}), nil
}

func (s *Store) listVehicles(keep func(models.Vehicle) bool) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vehicle, 0)
	for _, v := range s.vehicles {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Model != out[j].Model {
			return out[i].Model < out[j].Model
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// --------------------------------------------------
// Rentals
// --------------------------------------------------

func (s *Store) CreateRental(ctx context.Context, r *models.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[r.CustomerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := s.vehicles[r.VehicleID]; !ok {
		return gorm.ErrForeignKeyViolated
	}

	now := time.Now()
	r.ID = s.newID()
	r.CreatedAt, r.UpdatedAt = now, now
	s.rentals[r.ID] = stripAssociations(*r)
	return nil
}

func (s *Store) GetRentalForUpdate(ctx context.Context, id uint) (*models.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rentals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (s *Store) SaveRental(ctx context.Context, r *models.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rentals[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	r.UpdatedAt = time.Now()
	s.rentals[r.ID] = stripAssociations(*r)
	return nil
}

func (s *Store) ListActiveRentals(ctx context.Context) ([]models.Rental, error) {
	out := s.listRentals(func(r models.Rental) bool {
		return r.Status == string(rentaldomain.StatusActive)
	}, true)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (s *Store) ListFinalizedRentals(ctx context.Context) ([]models.Rental, error) {
	out := s.listRentals(func(r models.Rental) bool {
		return r.Status == string(rentaldomain.StatusFinalized)
	}, true)
	rentaldomain.SortByReturnDesc(out)
	return out, nil
}

func (s *Store) ListCustomerRentals(ctx context.Context, customerID uint) ([]models.Rental, error) {
	out := s.listRentals(func(r models.Rental) bool {
		return r.CustomerID == customerID
	}, false)
	rentaldomain.SortForCustomer(out)
	return out, nil
}

// listRentals devolve em ordem de ID, com Vehicle sempre carregado e
// Customer só quando withCustomer.
func (s *Store) listRentals(keep func(models.Rental) bool, withCustomer bool) []models.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rental, 0)
	for _, r := range s.rentals {
		if !keep(r) {
			continue
		}
		r.Vehicle = s.vehicles[r.VehicleID]
		if withCustomer {
			r.Customer = s.accounts[r.CustomerID]
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Rentals devolve todas as locações em ordem de ID, só com Vehicle carregado.
func (s *Store) Rentals() []models.Rental {
	return s.listRentals(func(models.Rental) bool { return true }, false)
}

func stripAssociations(r models.Rental) models.Rental {
	r.Customer = models.Account{}
	r.Vehicle = models.Vehicle{}
	return r
}

// Compile-time checks
var (
	_ rentaldomain.Repository  = (*Store)(nil)
	_ vehicledomain.Repository = (*Store)(nil)
	_ accountdomain.Repository = (*Store)(nil)
)
