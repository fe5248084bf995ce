package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Eursukkul/eventhub/internal/dto"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrCategoryInUse       = errors.New("category still has events")
)

// Notifier publishes change notices. A nil Notifier disables publishing.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

// Clock returns the current time in the application's time zone.
type Clock func() time.Time

// DeletePolicy decides what happens to a category's events when it is deleted.
type DeletePolicy string

const (
	DeleteRestrict DeletePolicy = "restrict"
	DeleteCascade  DeletePolicy = "cascade"
)

func ParseDeletePolicy(raw string) (DeletePolicy, error) {
	switch p := DeletePolicy(raw); p {
	case DeleteRestrict, DeleteCascade:
		return p, nil
	default:
		return "", fmt.Errorf("unknown category delete policy %q", raw)
	}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func publish(n Notifier, now Clock, entity, action string, id uint, name string) {
	if n == nil {
		return
	}
	notice := dto.ChangeNotice{Entity: entity, Action: action, ID: id, Name: name, At: now()}
	if err := n.Publish(notice.RoutingKey(), notice); err != nil {
		slog.Warn("publish change notice failed", "routing_key", notice.RoutingKey(), "id", id, "error", err)
	}
}

// firstMissing returns the first id in want that is absent from have.
func firstMissing(want, have []uint) (uint, bool) {
	found := make(map[uint]struct{}, len(have))
	for _, id := range have {
		found[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := found[id]; !ok {
			return id, true
		}
	}
	return 0, false
}
