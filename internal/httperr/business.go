package httperr

import "errors"

// Códigos de erro de negócio expostos em error_code.
const (
	CodeInvalidInput         = "invalid_input"
	CodeVehicleUnavailable   = "vehicle_unavailable"
	CodeRentalNotActive      = "rental_not_active"
	CodeRentalNotFound       = "rental_not_found"
	CodeCustomerNotFound     = "customer_not_found"
	CodeVehicleNotFound      = "vehicle_not_found"
	CodeAccountNotFound      = "account_not_found"
	CodeDuplicateKey         = "duplicate_key"
	CodeReferentialConflict  = "referential_conflict"
	CodeForbidden            = "forbidden"
	CodeInvalidCredentials   = "invalid_credentials"
	CodePhotoStorageDisabled = "photo_storage_disabled"
	CodeInvalidImage         = "invalid_image"
	CodeInvalidEmailDomain   = "invalid_email_domain"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código de err quando ele é um BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
