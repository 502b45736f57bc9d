package usecase

import (
	"context"
	"time"

	"RiskFolio/internal/domain/repository"
	applogger "RiskFolio/pkg/logger"
)

// PriceUpdater keeps holding prices fresh from a live market stream. Each
// tick updates current_price and market_value for every holding of that
// ticker. The stream is reconnected with a fixed delay when it drops.
type PriceUpdater struct {
	stream         repository.PriceStream
	holdings       repository.Holdings
	reconnectDelay time.Duration
	logger         *applogger.Logger

	cancel context.CancelFunc
}

// NewPriceUpdater creates a price updater.
func NewPriceUpdater(stream repository.PriceStream, holdings repository.Holdings, reconnectDelay time.Duration, logger *applogger.Logger) *PriceUpdater {
	return &PriceUpdater{
		stream:         stream,
		holdings:       holdings,
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}
}

// Start runs the stream loop until the context ends.
func (u *PriceUpdater) Start(ctx context.Context) error {
	ctx, u.cancel = context.WithCancel(ctx)

	for {
		if err := u.runOnce(ctx); err != nil {
			u.logger.Warn("price feed dropped, reconnecting", applogger.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.reconnectDelay):
		}
	}
}

func (u *PriceUpdater) runOnce(ctx context.Context) error {
	if err := u.stream.Connect(ctx); err != nil {
		return err
	}
	defer u.stream.Close()

	tickers, err := u.holdings.DistinctTickers(ctx)
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		u.logger.Info("price feed: no holdings to subscribe, idling")
	}
	if err := u.stream.Subscribe(ctx, tickers); err != nil {
		return err
	}

	ticks, errs := u.stream.Read(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return err
		case tick, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := u.holdings.UpdatePrice(ctx, tick.Symbol, tick.Price); err != nil {
				u.logger.Warn("price update failed",
					applogger.String("ticker", tick.Symbol),
					applogger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the stream loop.
func (u *PriceUpdater) Shutdown(_ context.Context) error {
	if u.cancel != nil {
		u.cancel()
	}
	return u.stream.Close()
}
