package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random identifier for auctions and notifications
func GenerateID() string {
	return uuid.NewString()
}

// GenerateOrderedID returns a time-ordered (v7) identifier. Bid ids use it so
// they sort roughly with the ledger.
func GenerateOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
