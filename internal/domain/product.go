package domain

import "github.com/google/uuid"

// Product is a catalog record; the cart treats it as immutable.
type Product struct {
	ID        uuid.UUID
	Name      string
	UnitPrice Money
	Category  string
}
