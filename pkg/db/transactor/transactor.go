package transactor

import (
	"context"
)

// Transactor runs function within transaction, transaction travels inside context
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
