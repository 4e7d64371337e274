package repository

import (
	"errors"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"travel-backend/models"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// translate maps driver errors onto the model error kinds so the services never
// have to look at MySQL error numbers.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isMySQLError(err, mysqlDuplicateEntry):
		return fmt.Errorf("%s: %w: %v", op, models.ErrDuplicateKey, err)
	case isMySQLError(err, mysqlRowIsReferenced):
		return fmt.Errorf("%s: %w: %v", op, models.ErrConflict, err)
	case isMySQLError(err, mysqlNoReferencedRow):
		return fmt.Errorf("%s: %w: %v", op, models.ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isMySQLError(err error, number uint16) bool {
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == number
}
