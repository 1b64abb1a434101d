package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate value violates unique constraint")
	ErrForeignKey     = errors.New("foreign key constraint violated")
	ErrCheckViolation = errors.New("check constraint violated")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidStatus  = errors.New("invalid status")
)

// Code returns the stable error code for err, or "DB_ERROR" for anything unclassified.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, ErrForeignKey):
		return "FK_VIOLATION"
	case errors.Is(err, ErrCheckViolation):
		return "CHECK_VIOLATION"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrInvalidInput):
		return "VALIDATION_ERROR"
	default:
		return "DB_ERROR"
	}
}

// classify maps driver errors onto the sentinels above. gorm translates some of them
// already; the message checks cover SQLite and MySQL text for the rest.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrCheckViolation, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "duplicate entry"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "foreign key constraint"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case strings.Contains(msg, "check constraint"):
		return fmt.Errorf("%w: %v", ErrCheckViolation, err)
	}
	return err
}

func invalid(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
