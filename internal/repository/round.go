package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

var ErrEmptyRoundID = errors.New("round id is empty")

const roundKeyPrefix = "round:"

// RoundJournalOptions controls where finished rounds are written.
type RoundJournalOptions struct {
	ListKey    string
	Channel    string
	MaxEntries int64
	TTL        time.Duration
}

// RoundRepository writes finished rounds. It never reads them back into play.
type RoundRepository interface {
	Save(ctx context.Context, result *entity.RoundResult) error
}

type dbRound struct {
	client  *redis.Client
	options RoundJournalOptions
}

func NewRoundRepository(client *redis.Client, options RoundJournalOptions) RoundRepository {
	return &dbRound{
		client:  client,
		options: options,
	}
}

func RoundKey(id string) string {
	return roundKeyPrefix + id
}

// Save stores the round under its own key, prepends it to the capped list and
// announces it on the channel.
func (that *dbRound) Save(ctx context.Context, result *entity.RoundResult) error {
	if result.RoundID == "" {
		return ErrEmptyRoundID
	}

	roundJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, RoundKey(result.RoundID), roundJSON, that.options.TTL)

		if that.options.ListKey != "" {
			pipe.LPush(ctx, that.options.ListKey, roundJSON)
			if that.options.MaxEntries > 0 {
				pipe.LTrim(ctx, that.options.ListKey, 0, that.options.MaxEntries-1)
			}
		}

		if that.options.Channel != "" {
			pipe.Publish(ctx, that.options.Channel, roundJSON)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}
