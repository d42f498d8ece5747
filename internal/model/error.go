package model

// Standard error codes reported by the ordering terminal.
const (
	ErrCodeInvalidSelection = "INVALID_SELECTION"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeOutOfRange       = "OUT_OF_RANGE"
	ErrCodeEmptyOrder       = "EMPTY_ORDER"
	ErrCodeMenuLoadFailed   = "MENU_LOAD_FAILED"
	ErrCodeMenuSaveFailed   = "MENU_SAVE_FAILED"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidSelection = NewDomainError(ErrCodeInvalidSelection, "Invalid index. Try again.")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Amount must be a whole number greater than 0.")
	ErrInvalidPrice     = NewDomainError(ErrCodeInvalidPrice, "Price must be a non-negative number.")
	ErrOutOfRange       = NewDomainError(ErrCodeOutOfRange, "Catalog index out of range")
	ErrEmptyOrder       = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrMenuLoad         = NewDomainError(ErrCodeMenuLoadFailed, "failed to load menu")
	ErrMenuSave         = NewDomainError(ErrCodeMenuSaveFailed, "failed to save menu")
)
