package handler

import (
	"game-night-go/internal/auth"
	"game-night-go/internal/catalog/bgg"
	collectiondomain "game-night-go/internal/domain/collection"
	householddomain "game-night-go/internal/domain/household"
	playsdomain "game-night-go/internal/domain/plays"
	recommenddomain "game-night-go/internal/domain/recommend"
	statsdomain "game-night-go/internal/domain/stats"
	userdomain "game-night-go/internal/domain/user"
	"game-night-go/pkg/logger"
)

type Handlers struct {
	Users      *userdomain.Service
	Households *householddomain.Service
	Collection *collectiondomain.Service
	Plays      *playsdomain.Service
	Recommend  *recommenddomain.Service
	Stats      *statsdomain.Service
	Catalog    *bgg.Client
	Tokens     *auth.Tokens

	log logger.Logger
}

func New(
	users *userdomain.Service,
	households *householddomain.Service,
	collection *collectiondomain.Service,
	plays *playsdomain.Service,
	recommend *recommenddomain.Service,
	stats *statsdomain.Service,
	catalog *bgg.Client,
	tokens *auth.Tokens,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:      users,
		Households: households,
		Collection: collection,
		Plays:      plays,
		Recommend:  recommend,
		Stats:      stats,
		Catalog:    catalog,
		Tokens:     tokens,
		log:        log,
	}
}
