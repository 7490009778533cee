package usecase

import (
	"errors"
	"fmt"
)

// コア操作の失敗種別。呼び出し側（UI層）はこれで分岐する。
type ErrorKind string

const (
	ErrOfferNotFound     ErrorKind = "OFFER_NOT_FOUND"
	ErrInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	ErrCodeNotFound      ErrorKind = "CODE_NOT_FOUND"
	ErrAlreadyPickedUp   ErrorKind = "ALREADY_PICKED_UP"
	ErrOrderCanceled     ErrorKind = "ORDER_CANCELED"
	ErrOrderNotFound     ErrorKind = "ORDER_NOT_FOUND"
	ErrInvalidState      ErrorKind = "INVALID_STATE"

	//並行更新に負けた。全体をもう1回だけリトライしてよい。
	ErrStorageConflict ErrorKind = "STORAGE_CONFLICT"

	ErrPaymentRefused ErrorKind = "PAYMENT_REFUSED"
	ErrInvalidInput   ErrorKind = "INVALID_INPUT"
	ErrInternal       ErrorKind = "INTERNAL"
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewServiceError(kind ErrorKind, message string) error {
	return &ServiceError{
		Kind:    kind,
		Message: message,
	}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	ok := errors.As(err, &se)
	return se, ok
}

func IsKind(err error, kind ErrorKind) bool {
	se, ok := AsServiceError(err)
	return ok && se.Kind == kind
}
