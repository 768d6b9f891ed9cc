package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auction-market/internal/models"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

func newBidService(ctrl *gomock.Controller) (
	*services.BidService,
	*services.MockCurrentPriceReader,
	*services.MockCurrentPriceWriter,
	*services.MockBidLedger,
	*services.MockBidHistoryReader,
	*services.MockPostCacheInvalidator,
	*services.MockKafkaWriter,
) {
	priceReader := services.NewMockCurrentPriceReader(ctrl)
	priceWriter := services.NewMockCurrentPriceWriter(ctrl)
	ledger := services.NewMockBidLedger(ctrl)
	history := services.NewMockBidHistoryReader(ctrl)
	cache := services.NewMockPostCacheInvalidator(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewBidService(priceReader, priceWriter, ledger, history, cache, kafkaWriter)
	return svc, priceReader, priceWriter, ledger, history, cache, kafkaWriter
}

func TestBidService_PlaceBid_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, priceWriter, ledger, _, cache, kafkaWriter := newBidService(ctrl)

	postID := uuid.New()
	bidderID := uuid.New()
	bidID := uuid.New()

	priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil)
	priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(true, nil)
	ledger.EXPECT().Append(gomock.Any(), postID, bidderID, int64(150)).Return(bidID, nil)
	cache.EXPECT().Delete(gomock.Any(), postID).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
	assert.NoError(t, err)
	assert.Equal(t, bidID, got)
}

func TestBidService_PlaceBid_PostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, _, _, _, _, _ := newBidService(ctrl)

	postID := uuid.New()
	priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(0), sql.ErrNoRows)

	// A bid against a nonexistent post changes no state anywhere:
	// no CompareAndSetPrice, Append, cache or Kafka calls are expected.
	got, err := svc.PlaceBid(context.Background(), postID, 150, uuid.New())
	assert.ErrorIs(t, err, services.ErrPostNotFound)
	assert.Equal(t, uuid.Nil, got)
}

func TestBidService_PlaceBid_TooLow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, _, _, _, _, _ := newBidService(ctrl)

	postID := uuid.New()

	tests := []struct {
		name         string
		currentPrice int64
		bidAmount    int64
	}{
		{"below current price", 150, 120},
		{"equal to current price", 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(tt.currentPrice, nil)

			// Rejection happens before any mutation: no writer calls expected.
			got, err := svc.PlaceBid(context.Background(), postID, tt.bidAmount, uuid.New())
			assert.ErrorIs(t, err, services.ErrBidTooLow)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestBidService_PlaceBid_RetriesAfterLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, priceWriter, ledger, _, cache, kafkaWriter := newBidService(ctrl)

	postID := uuid.New()
	bidderID := uuid.New()
	bidID := uuid.New()

	// First attempt validates against 100 but a concurrent bid commits 120
	// before our conditional update lands. The second attempt re-reads the
	// fresh price, re-validates and succeeds.
	gomock.InOrder(
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil),
		priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(false, nil),
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(120), nil),
		priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(120), int64(150)).Return(true, nil),
		ledger.EXPECT().Append(gomock.Any(), postID, bidderID, int64(150)).Return(bidID, nil),
	)
	cache.EXPECT().Delete(gomock.Any(), postID).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
	assert.NoError(t, err)
	assert.Equal(t, bidID, got)
}

func TestBidService_PlaceBid_RejectsWhenRaceOutbidsUs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, priceWriter, _, _, _, _ := newBidService(ctrl)

	postID := uuid.New()

	// We validate against 100, lose the race to a 160 bid, and the re-read
	// price now exceeds our amount: the bid is rejected, not committed.
	gomock.InOrder(
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil),
		priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(false, nil),
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(160), nil),
	)

	got, err := svc.PlaceBid(context.Background(), postID, 150, uuid.New())
	assert.ErrorIs(t, err, services.ErrBidTooLow)
	assert.Equal(t, uuid.Nil, got)
}

func TestBidService_PlaceBid_ConflictAfterExhaustedRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, priceWriter, _, _, _, _ := newBidService(ctrl)

	postID := uuid.New()

	// Every attempt loses the compare-and-set while the price stays below
	// the bid; after three attempts the conflict surfaces to the caller.
	priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil).Times(3)
	priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(false, nil).Times(3)

	got, err := svc.PlaceBid(context.Background(), postID, 150, uuid.New())
	assert.ErrorIs(t, err, services.ErrBidConflict)
	assert.Equal(t, uuid.Nil, got)
}

func TestBidService_PlaceBid_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()
	bidderID := uuid.New()
	storageErr := errors.New("connection reset")

	t.Run("price read fails", func(t *testing.T) {
		svc, priceReader, _, _, _, _, _ := newBidService(ctrl)
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(0), storageErr)

		_, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("price update fails", func(t *testing.T) {
		svc, priceReader, priceWriter, _, _, _, _ := newBidService(ctrl)
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil)
		priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(false, storageErr)

		_, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("ledger append fails", func(t *testing.T) {
		svc, priceReader, priceWriter, ledger, _, _, _ := newBidService(ctrl)
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil)
		priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(true, nil)
		ledger.EXPECT().Append(gomock.Any(), postID, bidderID, int64(150)).Return(uuid.Nil, storageErr)

		_, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestBidService_PlaceBid_KafkaFailureDoesNotFailBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, priceWriter, ledger, _, cache, kafkaWriter := newBidService(ctrl)

	postID := uuid.New()
	bidderID := uuid.New()
	bidID := uuid.New()

	priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil)
	priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(true, nil)
	ledger.EXPECT().Append(gomock.Any(), postID, bidderID, int64(150)).Return(bidID, nil)
	cache.EXPECT().Delete(gomock.Any(), postID).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
	assert.NoError(t, err)
	assert.Equal(t, bidID, got)
}

func TestBidService_PlaceBid_NilCacheAndKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceReader := services.NewMockCurrentPriceReader(ctrl)
	priceWriter := services.NewMockCurrentPriceWriter(ctrl)
	ledger := services.NewMockBidLedger(ctrl)
	history := services.NewMockBidHistoryReader(ctrl)

	svc := services.NewBidService(priceReader, priceWriter, ledger, history, nil, nil)

	postID := uuid.New()
	bidderID := uuid.New()
	bidID := uuid.New()

	priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(100), nil)
	priceWriter.EXPECT().CompareAndSetPrice(gomock.Any(), postID, int64(100), int64(150)).Return(true, nil)
	ledger.EXPECT().Append(gomock.Any(), postID, bidderID, int64(150)).Return(bidID, nil)

	got, err := svc.PlaceBid(context.Background(), postID, 150, bidderID)
	assert.NoError(t, err)
	assert.Equal(t, bidID, got)
}

func TestBidService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, priceReader, _, _, history, _, _ := newBidService(ctrl)

	postID := uuid.New()

	t.Run("returns bids in order", func(t *testing.T) {
		bids := []models.BidDB{
			{BidID: uuid.New(), PostID: postID, BidAmount: 150},
			{BidID: uuid.New(), PostID: postID, BidAmount: 200},
		}

		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(200), nil)
		history.EXPECT().ListByPost(gomock.Any(), postID).Return(bids, nil)

		got, err := svc.History(context.Background(), postID)
		assert.NoError(t, err)
		assert.Equal(t, bids, got)
	})

	t.Run("unknown post", func(t *testing.T) {
		priceReader.EXPECT().GetCurrentPrice(gomock.Any(), postID).Return(int64(0), sql.ErrNoRows)

		got, err := svc.History(context.Background(), postID)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, got)
	})
}
