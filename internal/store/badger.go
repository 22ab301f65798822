// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// Key prefixes. Score and feedback keys embed a zero-padded unix-nano
// timestamp so Badger's lexicographic key order doubles as time order.
const (
	prefixSnapshot = "snapshot:"
	prefixScore    = "score:"
	prefixFeedback = "feedback:"
	prefixWeights  = "weights:"
	prefixRec      = "rec:"
)

// BadgerStore persists the adaptation core's data in a BadgerDB
// key-value store. It implements adapt.Store and adapt.SignalProvider.
// Score history and the feedback log are append-only; nothing deletes
// or rewrites their entries.
type BadgerStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens or creates a Badger database at path.
func Open(path string, logger zerolog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	return open(opts, logger)
}

// OpenInMemory opens an in-memory Badger database. Used by tests and
// development runs; contents are lost on Close.
func OpenInMemory(logger zerolog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return open(opts, logger)
}

func open(opts badger.Options, logger zerolog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// RunGC runs Badger value-log garbage collection until it reports
// nothing left to collect. Call periodically from the server loop.
func (s *BadgerStore) RunGC() {
	for {
		if err := s.db.RunValueLogGC(0.5); err != nil {
			return
		}
	}
}

// brandKey escapes the brand component of a key. Brand IDs are
// free-form, so an unescaped delimiter character would let one brand's
// records land inside another brand's key prefix.
func brandKey(brandID string) string {
	return url.QueryEscape(brandID)
}

func scoreKey(brandID string, at time.Time) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", prefixScore, brandKey(brandID), at.UnixNano()))
}

func feedbackKey(brandID string, at time.Time, eventID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s", prefixFeedback, brandKey(brandID), at.UnixNano(), eventID))
}

// PutSnapshot stores the current snapshot for a brand, replacing any
// previous one. Validation happens in the caller.
func (s *BadgerStore) PutSnapshot(ctx context.Context, snap *adapt.BrandSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	key := []byte(prefixSnapshot + brandKey(snap.BrandID))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Snapshot implements adapt.SignalProvider.
func (s *BadgerStore) Snapshot(ctx context.Context, brandID string) (*adapt.BrandSnapshot, error) {
	var snap adapt.BrandSnapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixSnapshot + brandKey(brandID)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownBrand, brandID)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &snap, nil
}

// AppendScore implements adapt.HistoryStore.
func (s *BadgerStore) AppendScore(ctx context.Context, score *adapt.AdaptationScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(scoreKey(score.BrandID, score.ComputedAt), data)
	})
}

// LatestScore implements adapt.HistoryStore. Returns (nil, nil) when
// the brand has no history.
func (s *BadgerStore) LatestScore(ctx context.Context, brandID string) (*adapt.AdaptationScore, error) {
	prefix := []byte(prefixScore + brandKey(brandID) + ":")
	var latest *adapt.AdaptationScore
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the last possible key under the prefix.
		it.Seek(append(bytes.Clone(prefix), 0xff))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		return it.Item().Value(func(val []byte) error {
			latest = &adapt.AdaptationScore{}
			return json.Unmarshal(val, latest)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("latest score: %w", err)
	}
	return latest, nil
}

// ScoreRange implements adapt.HistoryStore. Keys sort by timestamp, so
// a forward prefix scan yields ascending order.
func (s *BadgerStore) ScoreRange(ctx context.Context, brandID string, from, to time.Time) ([]*adapt.AdaptationScore, error) {
	prefix := []byte(prefixScore + brandKey(brandID) + ":")
	var scores []*adapt.AdaptationScore
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var score adapt.AdaptationScore
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &score)
			}); err != nil {
				return err
			}
			if !from.IsZero() && score.ComputedAt.Before(from) {
				continue
			}
			if !to.IsZero() && score.ComputedAt.After(to) {
				break
			}
			scores = append(scores, &score)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("score range: %w", err)
	}
	return scores, nil
}

// AppendEvent implements adapt.FeedbackStore.
func (s *BadgerStore) AppendEvent(ctx context.Context, event *adapt.FeedbackEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal feedback event: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(feedbackKey(event.BrandID, event.Timestamp, event.ID), data)
	})
}

// EventsByBrand implements adapt.FeedbackStore.
func (s *BadgerStore) EventsByBrand(ctx context.Context, brandID string) ([]*adapt.FeedbackEvent, error) {
	prefix := []byte(prefixFeedback + brandKey(brandID) + ":")
	var events []*adapt.FeedbackEvent
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var event adapt.FeedbackEvent
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &event)
			}); err != nil {
				return err
			}
			events = append(events, &event)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("events by brand: %w", err)
	}
	return events, nil
}

// Weights implements adapt.WeightStore. Returns default weights when
// none are stored.
func (s *BadgerStore) Weights(ctx context.Context, brandID string) (*adapt.PersonalizationWeights, error) {
	var weights adapt.PersonalizationWeights
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixWeights + brandKey(brandID)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &weights)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return adapt.NewPersonalizationWeights(brandID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weights: %w", err)
	}
	if weights.PerType == nil {
		weights.PerType = make(map[adapt.CandidateType]float64)
	}
	return &weights, nil
}

// PutWeights implements adapt.WeightStore.
func (s *BadgerStore) PutWeights(ctx context.Context, weights *adapt.PersonalizationWeights) error {
	data, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("marshal weights: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefixWeights+brandKey(weights.BrandID)), data)
	})
}

// PutRecommendation implements adapt.RecommendationStore.
func (s *BadgerStore) PutRecommendation(ctx context.Context, rec *adapt.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefixRec+rec.ID), data)
	})
}

// Recommendation implements adapt.RecommendationStore.
func (s *BadgerStore) Recommendation(ctx context.Context, id string) (*adapt.Recommendation, error) {
	var rec adapt.Recommendation
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixRec + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownRecommendation, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	return &rec, nil
}

// UpdateStatus implements adapt.RecommendationStore. The read and the
// write share one transaction so concurrent transitions never clobber
// each other.
func (s *BadgerStore) UpdateStatus(ctx context.Context, id string, status adapt.Status, at time.Time) (*adapt.Recommendation, error) {
	var rec adapt.Recommendation
	key := []byte(prefixRec + id)
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}
		rec.Status = status
		rec.UpdatedAt = at
		data, err := json.Marshal(&rec)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownRecommendation, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return &rec, nil
}
