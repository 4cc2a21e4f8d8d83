package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
	"github.com/BruksfildServices01/vivacar/internal/testutil/memory"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

var staff = access.Actor{ID: 100, Role: access.RoleStaff}

func TestRegister_CreatesCustomer(t *testing.T) {
	store := memory.NewStore()

	acc, err := NewRegister(store).Execute(context.Background(), CustomerInput{
		Email:    "  Ana@VivaCar.com ",
		CPF:      "123.456.789-09",
		Password: "segredo1",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@vivacar.com", acc.Email)
	assert.Equal(t, "cliente", acc.Role)
	require.NotNil(t, acc.CPF)
	assert.Equal(t, "12345678909", *acc.CPF)
	assert.NotEqual(t, "segredo1", acc.PasswordHash)
}

func TestRegister_DuplicateCPFInAnyFormat(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := NewRegister(store)

	_, err := uc.Execute(ctx, CustomerInput{Email: "a@vivacar.com", CPF: "123.456.789-09", Password: "segredo1"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CustomerInput{Email: "b@vivacar.com", CPF: "12345678909", Password: "segredo2"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateKey))

	_, err = NewCreateCustomer(store).Execute(ctx, staff, CustomerInput{Email: "c@vivacar.com", CPF: "123.456.78909", Password: "segredo3"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateKey))

	customers, err := NewListCustomers(store).Execute(ctx, staff)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := NewRegister(store)

	first, err := uc.Execute(ctx, CustomerInput{Email: "ana@vivacar.com", Password: "segredo1"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CustomerInput{Email: "ana@vivacar.com", CPF: "111.222.333-44", Password: "outra"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateKey))

	stored, err := store.GetAccount(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CPF)

	customers, err := NewListCustomers(store).Execute(ctx, staff)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestRegister_Validation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := NewRegister(store).Execute(ctx, CustomerInput{Email: "ana", Password: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = NewRegister(store).Execute(ctx, CustomerInput{Email: "ana@vivacar.com", CPF: "12", Password: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = NewRegister(store).Execute(ctx, CustomerInput{Email: "ana@vivacar.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	reject := WithEmailDomainCheck(func(string) bool { return false })
	_, err = NewRegister(store, reject).Execute(ctx, CustomerInput{Email: "ana@nowhere.invalid", Password: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidEmailDomain))
}

func TestAuthenticate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := NewRegister(store).Execute(ctx, CustomerInput{
		Email: "ana@vivacar.com", CPF: "123.456.789-09", Password: "segredo1",
	})
	require.NoError(t, err)

	uc := NewAuthenticate(store)

	acc, err := uc.Execute(ctx, "ANA@vivacar.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, "ana@vivacar.com", acc.Email)

	acc, err = uc.Execute(ctx, "123.456.789-09", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, "ana@vivacar.com", acc.Email)

	acc, err = uc.Execute(ctx, " 12345678909 ", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, "ana@vivacar.com", acc.Email)

	_, err = uc.Execute(ctx, "ana@vivacar.com", "errada")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))

	_, err = uc.Execute(ctx, "ninguem@vivacar.com", "segredo1")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
}

func TestUpdateCustomer(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	ana, err := NewCreateCustomer(store).Execute(ctx, staff, CustomerInput{Email: "ana@vivacar.com", Password: "segredo1"})
	require.NoError(t, err)
	_, err = NewCreateCustomer(store).Execute(ctx, staff, CustomerInput{Email: "bia@vivacar.com", Password: "segredo2"})
	require.NoError(t, err)

	uc := NewUpdateCustomer(store)

	updated, err := uc.Execute(ctx, staff, ana.ID, CustomerInput{Email: "ana.souza@vivacar.com", CPF: "123.456.789-09"})
	require.NoError(t, err)
	assert.Equal(t, "ana.souza@vivacar.com", updated.Email)
	assert.Equal(t, ana.PasswordHash, updated.PasswordHash)

	_, err = NewAuthenticate(store).Execute(ctx, "123.456.789-09", "segredo1")
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, staff, ana.ID, CustomerInput{Email: "bia@vivacar.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateKey))

	_, err = uc.Execute(ctx, staff, 999, CustomerInput{Email: "x@vivacar.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCustomerNotFound))

	_, err = uc.Execute(ctx, access.Actor{ID: ana.ID, Role: access.RoleCustomer}, ana.ID, CustomerInput{Email: "x@vivacar.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestDeleteCustomer(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	ana, err := NewCreateCustomer(store).Execute(ctx, staff, CustomerInput{Email: "ana@vivacar.com", Password: "segredo1"})
	require.NoError(t, err)
	bia, err := NewCreateCustomer(store).Execute(ctx, staff, CustomerInput{Email: "bia@vivacar.com", Password: "segredo2"})
	require.NoError(t, err)

	car := &models.Vehicle{Model: "Onix", Plate: "ABC1D23"}
	require.NoError(t, store.CreateVehicle(ctx, car))
	require.NoError(t, store.CreateRental(ctx, &models.Rental{CustomerID: bia.ID, VehicleID: car.ID, Status: "Finalizada"}))

	uc := NewDeleteCustomer(store)

	require.NoError(t, uc.Execute(ctx, staff, ana.ID))
	_, err = store.GetAccount(ctx, ana.ID)
	assert.Error(t, err)

	err = uc.Execute(ctx, staff, bia.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeReferentialConflict))
}

func TestGetAccount_SelfOrStaff(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	ana, err := NewRegister(store).Execute(ctx, CustomerInput{Email: "ana@vivacar.com", Password: "segredo1"})
	require.NoError(t, err)

	uc := NewGetAccount(store)

	got, err := uc.Execute(ctx, access.Actor{ID: ana.ID, Role: access.RoleCustomer}, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.Email, got.Email)

	_, err = uc.Execute(ctx, access.Actor{ID: ana.ID + 1, Role: access.RoleCustomer}, ana.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	_, err = uc.Execute(ctx, staff, 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAccountNotFound))
}

func TestEnsureDefaultStaff_Idempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := NewEnsureDefaultStaff(store)

	acc, created, err := uc.Execute(ctx, "vivacar@gmail.com", "000.000.000-00", "funcionarioviva1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "funcionario", acc.Role)

	again, created, err := uc.Execute(ctx, "vivacar@gmail.com", "000.000.000-00", "outra")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, acc.ID, again.ID)

	_, err = NewAuthenticate(store).Execute(ctx, "000.000.000-00", "funcionarioviva1")
	assert.NoError(t, err)
}
