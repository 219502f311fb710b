package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
)

// sessionTTL bounds how long a checkout session holds its selections.
const sessionTTL = 10 * time.Minute

// StartSession prices the customer's selections and caches a checkout
// session in Redis. The session is advisory; the slot itself is only
// claimed by the final transactional insert.
func (s *DefaultBookingService) StartSession(ctx context.Context, items []models.SessionItem) (*models.BookingSession, error) {
	if len(items) == 0 {
		return nil, utils.NewValidationError("at least one service must be selected")
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ServiceID)
	}
	services, err := s.ServicesRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Items:     items,
	}
	var names []string
	for _, item := range items {
		svc, ok := byID[item.ServiceID]
		if !ok || !svc.Active {
			return nil, utils.NewValidationError("unknown or inactive service: %s", item.ServiceID)
		}
		switch svc.Kind {
		case models.ServiceKindExtra:
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			session.TotalPrice += svc.Price * float64(qty)
			if qty > 1 {
				names = append(names, fmt.Sprintf("%s x%d", svc.Name, qty))
			} else {
				names = append(names, svc.Name)
			}
		default:
			// Main services always count once and occupy calendar time.
			session.TotalPrice += svc.Price
			session.TotalDuration += svc.Duration
			names = append(names, svc.Name)
		}
	}
	session.ServiceName = strings.Join(names, " + ")

	data, err := json.Marshal(session)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	cacheClient := utils.GetBookingCacheClient()
	if err := cacheClient.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return session, nil
}

// GetSession retrieves a cached checkout session.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	cacheClient := utils.GetBookingCacheClient()
	data, err := cacheClient.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, utils.NewNotFoundError("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &session, nil
}

// DropSession removes a checkout session after confirmation.
func (s *DefaultBookingService) DropSession(ctx context.Context, sessionID string) {
	utils.GetBookingCacheClient().Del(ctx, sessionKey(sessionID))
}

func sessionKey(id string) string {
	return "booking:session:" + id
}
