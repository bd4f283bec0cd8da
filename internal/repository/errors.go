package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/backend/internal/model"
)

// ErrMissingField is returned when a message is saved with an empty required field.
var ErrMissingField = errors.New("missing required field")

// checkRequired rejects messages that the store must not persist.
func checkRequired(msg *model.ContactMessage) error {
	if missing := msg.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
