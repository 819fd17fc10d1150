package usecase

import (
	"context"
	"testing"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/NasaVasa/cryptobot/internal/infra/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func NewPortfolioMock(t *testing.T) (*PortfolioUsecase, *memstore.Store, *MockPriceOracle) {
	ctrl := gomock.NewController(t)
	store := memstore.New()
	oracle := NewMockPriceOracle(ctrl)
	return NewPortfolioUsecase(store, oracle, zaptest.NewLogger(t)), store, oracle
}

func TestAddHolding(t *testing.T) {
	uc, _, oracle := NewPortfolioMock(t)
	ctx := context.Background()

	oracle.EXPECT().FetchQuotes(gomock.Any(), []string{"bitcoin"}).
		Return(map[string]domain.Quote{"bitcoin": usd("50000")}, nil).Times(2)

	assetID, total, err := uc.AddHolding(ctx, 1, "btc", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", assetID)
	assert.Equal(t, "0.5", total.String())

	_, total, err = uc.AddHolding(ctx, 1, "bitcoin", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.75", total.String())
}

func TestAddHoldingErrors(t *testing.T) {
	uc, store, oracle := NewPortfolioMock(t)
	ctx := context.Background()

	_, _, err := uc.AddHolding(ctx, 1, "bitcoin", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, _, err = uc.AddHolding(ctx, 1, "bitcoin", "many")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	oracle.EXPECT().FetchQuotes(gomock.Any(), []string{"notacoin"}).Return(map[string]domain.Quote{}, nil)
	_, _, err = uc.AddHolding(ctx, 1, "notacoin", "1")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	assert.Empty(t, store.GetPortfolio(1))
}

func TestRemoveHolding(t *testing.T) {
	uc, store, _ := NewPortfolioMock(t)

	_, err := store.AddHolding(1, "ethereum", mustDecimal(t, "2"))
	require.NoError(t, err)

	assetID, err := uc.RemoveHolding(1, "ETH")
	require.NoError(t, err)
	assert.Equal(t, "ethereum", assetID)

	_, err = uc.RemoveHolding(1, "eth")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPortfolioValuation(t *testing.T) {
	uc, store, oracle := NewPortfolioMock(t)
	ctx := context.Background()

	assert.Empty(t, uc.Portfolio(ctx, 1).Items)

	_, err := store.AddHolding(1, "bitcoin", mustDecimal(t, "0.5"))
	require.NoError(t, err)
	_, err = store.AddHolding(1, "ethereum", mustDecimal(t, "2"))
	require.NoError(t, err)
	_, err = store.AddHolding(1, "delisted", mustDecimal(t, "100"))
	require.NoError(t, err)

	oracle.EXPECT().FetchQuotes(gomock.Any(), []string{"bitcoin", "ethereum", "delisted"}).
		Return(map[string]domain.Quote{"bitcoin": usd("50000"), "ethereum": usd("2500")}, nil)

	view := uc.Portfolio(ctx, 1)
	require.Len(t, view.Items, 3)
	assert.Equal(t, "30000", view.Total.String())
	require.NotNil(t, view.Items[0].Value)
	assert.Equal(t, "25000", view.Items[0].Value.String())
	assert.Nil(t, view.Items[2].Price)
	assert.Nil(t, view.Items[2].Value)
}

func TestPortfolioOracleDown(t *testing.T) {
	uc, store, oracle := NewPortfolioMock(t)

	_, err := store.AddHolding(1, "bitcoin", mustDecimal(t, "1"))
	require.NoError(t, err)
	oracle.EXPECT().FetchQuotes(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnavailable)

	view := uc.Portfolio(context.Background(), 1)
	require.Len(t, view.Items, 1)
	assert.Nil(t, view.Items[0].Value)
	assert.True(t, view.Total.IsZero())
}
