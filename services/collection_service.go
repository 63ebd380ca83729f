package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lewis3ai/INFOA1test/core"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/repositories"
	"github.com/Lewis3ai/INFOA1test/utils/redislog"
)

var (
	// ErrPokemonNotFound: the referenced catalog species does not exist.
	ErrPokemonNotFound = errors.New("pokemon not found")
	// ErrNotOwned: the UserPokemon row is missing or owned by someone
	// else; callers cannot tell which.
	ErrNotOwned = errors.New("pokemon not found or unauthorized")
)

// CollectionService is the use-case layer over a user's captured
// Pokémon. Every operation is scoped to the calling user's id.
type CollectionService interface {
	Save(userID, pokemonID uint, nickname string) (*models.UserPokemon, *models.Pokemon, error)
	List(userID uint) ([]models.UserPokemon, error)
	Get(userID, id uint) (*models.UserPokemon, error)
	Rename(userID, id uint, nickname string) error
	Release(userID, id uint) error
}

type collectionService struct {
	col     repositories.UserPokemonRepository
	catalog repositories.PokemonRepository
	rdb     *redis.Client // may be nil if cache disabled
	log     *redislog.Logger
}

func NewCollectionService(col repositories.UserPokemonRepository, catalog repositories.PokemonRepository, rdb *redis.Client, rlog *redislog.Logger) CollectionService {
	return &collectionService{col: col, catalog: catalog, rdb: rdb, log: rlog}
}

// Catalog rows never change after seeding, so a generous TTL is fine.
const pokemonCacheTTL = 10 * time.Minute

func (s *collectionService) cacheKeyPokemon(id uint) string {
	return fmt.Sprintf("pokemon:%d", id)
}

// speciesByID returns a catalog row, preferring Redis and falling back
// to the database. A missing row is ErrPokemonNotFound.
func (s *collectionService) speciesByID(id uint) (*models.Pokemon, error) {
	if s.rdb != nil {
		ctx := context.Background()
		key := s.cacheKeyPokemon(id)
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var p models.Pokemon
			if json.Unmarshal([]byte(val), &p) == nil {
				return &p, nil
			}
			s.log.Warn("catalog cache unmarshal failed", map[string]string{"key": key})
		} else if err != redis.Nil {
			s.log.Error("catalog cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	p, err := s.catalog.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrPokemonNotFound
		}
		return nil, err
	}

	if s.rdb != nil {
		if b, _ := json.Marshal(p); len(b) > 0 {
			_ = s.rdb.Set(context.Background(), s.cacheKeyPokemon(id), b, pokemonCacheTTL).Err()
		}
	}
	return p, nil
}

// Save verifies the species exists, then creates the owned row. The
// nickname defaults to the species name when empty.
func (s *collectionService) Save(userID, pokemonID uint, nickname string) (*models.UserPokemon, *models.Pokemon, error) {
	species, err := s.speciesByID(pokemonID)
	if err != nil {
		if errors.Is(err, ErrPokemonNotFound) {
			s.log.Warn("save unknown pokemon", map[string]string{"pokemon_id": fmt.Sprint(pokemonID)})
		}
		return nil, nil, err
	}

	up := &models.UserPokemon{
		UserID:    userID,
		PokemonID: species.ID,
		Name:      core.NormalizeNickname(nickname, species.Name),
	}
	if err := s.col.Create(up); err != nil {
		s.log.Error("save db error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		return nil, nil, err
	}

	s.log.Info("pokemon saved", map[string]string{
		"user_id":    fmt.Sprint(userID),
		"pokemon_id": fmt.Sprint(species.ID),
		"name":       up.Name,
	})
	return up, species, nil
}

func (s *collectionService) List(userID uint) ([]models.UserPokemon, error) {
	return s.col.ListByUser(userID)
}

func (s *collectionService) Get(userID, id uint) (*models.UserPokemon, error) {
	up, err := s.col.FindOwned(id, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNotOwned
		}
		return nil, err
	}
	return up, nil
}

func (s *collectionService) Rename(userID, id uint, nickname string) error {
	// Collapse whitespace; binding already rejects an absent name.
	nickname = strings.Join(strings.Fields(nickname), " ")
	if err := s.col.Rename(id, userID, nickname); err != nil {
		if repositories.IsNotFound(err) {
			return ErrNotOwned
		}
		return err
	}
	s.log.Info("pokemon renamed", map[string]string{"user_id": fmt.Sprint(userID), "id": fmt.Sprint(id), "name": nickname})
	return nil
}

func (s *collectionService) Release(userID, id uint) error {
	if err := s.col.Delete(id, userID); err != nil {
		if repositories.IsNotFound(err) {
			return ErrNotOwned
		}
		return err
	}
	s.log.Info("pokemon released", map[string]string{"user_id": fmt.Sprint(userID), "id": fmt.Sprint(id)})
	return nil
}
