package services

import "coinflip-casino-backend/internal/models"

type Broadcaster interface {
	BroadcastEvent(event models.Event)
}
