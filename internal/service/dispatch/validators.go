package dispatch

import (
	"strings"

	"github.com/google/uuid"
)

func isValidOrderID(orderID string) bool {
	if strings.TrimSpace(orderID) == "" {
		return false
	}
	_, err := uuid.Parse(orderID)
	return err == nil
}
