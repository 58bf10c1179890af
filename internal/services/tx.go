package services

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxManager runs a function inside a single database transaction. *gorm.DB
// satisfies it directly; tests substitute a stub that invokes the function
// without a real transaction.
type TxManager interface {
	Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
