package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

var (
	// ErrBidTooLow is returned when a bid does not strictly exceed the
	// current price. Equal bids are rejected: ties do not advance the auction.
	ErrBidTooLow = errors.New("bid amount must be greater than the current price")
	// ErrBidConflict is returned after concurrent bids won every
	// compare-and-set attempt; the caller should resubmit against the
	// fresh price.
	ErrBidConflict = errors.New("bid lost to a concurrent bid, please retry")
)

// maxPlaceBidAttempts bounds the compare-and-set retry loop. Each attempt
// re-reads the committed price and re-validates the bid against it.
const maxPlaceBidAttempts = 3

// CurrentPriceReader reads the committed current price of a post.
type CurrentPriceReader interface {
	GetCurrentPrice(ctx context.Context, postID uuid.UUID) (int64, error)
}

// CurrentPriceWriter conditionally moves the current price of a post.
type CurrentPriceWriter interface {
	CompareAndSetPrice(ctx context.Context, postID uuid.UUID, expectedPrice, newPrice int64) (bool, error)
}

// BidLedger appends accepted bids.
type BidLedger interface {
	Append(ctx context.Context, postID, userID uuid.UUID, bidAmount int64) (uuid.UUID, error)
}

// BidHistoryReader reads the accepted bids of a post.
type BidHistoryReader interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.BidDB, error)
}

// PostCacheInvalidator drops a cached post after its price moved.
type PostCacheInvalidator interface {
	Delete(ctx context.Context, postID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BidService validates and atomically commits bids. For any single post the
// committed price sequence is strictly increasing and every ledger row's
// amount equals the price it produced: the conditional update keyed to the
// validated price makes the read-then-write race structurally impossible.
type BidService struct {
	priceReader CurrentPriceReader
	priceWriter CurrentPriceWriter
	ledger      BidLedger
	history     BidHistoryReader
	cache       PostCacheInvalidator
	kafkaWriter KafkaWriter
}

// NewBidService creates a new BidService.
func NewBidService(
	priceReader CurrentPriceReader,
	priceWriter CurrentPriceWriter,
	ledger BidLedger,
	history BidHistoryReader,
	cache PostCacheInvalidator,
	kafkaWriter KafkaWriter,
) *BidService {
	return &BidService{
		priceReader: priceReader,
		priceWriter: priceWriter,
		ledger:      ledger,
		history:     history,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// PlaceBid validates bidAmount against the post's current price and commits
// the bid. On success exactly one post row is updated and exactly one bid
// row is appended, in the same atomic unit; the returned id identifies the
// new ledger row.
//
// Validation failures (ErrPostNotFound, ErrBidTooLow) are detected before
// any mutation and leave no state change. A lost compare-and-set is retried
// against the re-read price up to maxPlaceBidAttempts times, then surfaces
// ErrBidConflict.
func (s *BidService) PlaceBid(ctx context.Context, postID uuid.UUID, bidAmount int64, bidderID uuid.UUID) (uuid.UUID, error) {
	for attempt := 1; attempt <= maxPlaceBidAttempts; attempt++ {
		currentPrice, err := s.priceReader.GetCurrentPrice(ctx, postID)
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrPostNotFound
		}
		if err != nil {
			logger.Log.Errorw("failed to read current price", "postID", postID, "error", err)
			return uuid.Nil, err
		}

		if bidAmount <= currentPrice {
			logger.Log.Warnw("bid below current price",
				"postID", postID, "currentPrice", currentPrice, "bidAmount", bidAmount)
			return uuid.Nil, ErrBidTooLow
		}

		ok, err := s.priceWriter.CompareAndSetPrice(ctx, postID, currentPrice, bidAmount)
		if err != nil {
			logger.Log.Errorw("failed to update current price", "postID", postID, "error", err)
			return uuid.Nil, err
		}
		if !ok {
			// A concurrent bid moved the price between read and update.
			logger.Log.Infow("bid raced a concurrent commit",
				"postID", postID, "expectedPrice", currentPrice, "attempt", attempt)
			continue
		}

		bidID, err := s.ledger.Append(ctx, postID, bidderID, bidAmount)
		if err != nil {
			// The request transaction aborts, undoing the price update.
			logger.Log.Errorw("failed to append bid", "postID", postID, "error", err)
			return uuid.Nil, err
		}

		s.invalidatePost(ctx, postID)
		s.publishBidEvent(ctx, models.BidEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			BidID:     bidID.String(),
			PostID:    postID.String(),
			UserID:    bidderID.String(),
			BidAmount: bidAmount,
		})

		return bidID, nil
	}

	return uuid.Nil, ErrBidConflict
}

// History returns the accepted bids of a post in acceptance order.
func (s *BidService) History(ctx context.Context, postID uuid.UUID) ([]models.BidDB, error) {
	if _, err := s.priceReader.GetCurrentPrice(ctx, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		logger.Log.Errorw("failed to check post exists", "postID", postID, "error", err)
		return nil, err
	}

	bids, err := s.history.ListByPost(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to list bids", "postID", postID, "error", err)
		return nil, err
	}
	return bids, nil
}

// invalidatePost drops the cached copy of a post whose price moved.
func (s *BidService) invalidatePost(ctx context.Context, postID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, postID); err != nil {
		logger.Log.Warnw("failed to invalidate post cache", "postID", postID, "error", err)
	}
}

// publishBidEvent publishes an accepted bid to Kafka. Publishing is
// best-effort and never fails the request.
func (s *BidService) publishBidEvent(ctx context.Context, event models.BidEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "bid_id", event.BidID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bid event for Kafka", "bid_id", event.BidID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PostID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bid event to Kafka", "bid_id", event.BidID, "error", err)
	} else {
		logger.Log.Infow("Bid event published to Kafka", "bid_id", event.BidID, "amount", event.BidAmount)
	}
}
