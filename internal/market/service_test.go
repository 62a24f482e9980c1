package market

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/quantfeed/tradeboard/internal/model"
)

// fakeSource returns scripted price points.
type fakeSource struct {
	prices []float64
	calls  int
	err    error
}

func (f *fakeSource) Ticker24h(ctx context.Context, base, quote string) (*model.PricePoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	price := f.prices[f.calls%len(f.prices)]
	f.calls++
	return &model.PricePoint{
		Symbol:    base + "/" + quote,
		Price:     price,
		Timestamp: int64(f.calls),
	}, nil
}

func TestLivePriceRecordsHistory(t *testing.T) {
	src := &fakeSource{prices: []float64{100, 101, 102}}
	svc := NewService(src, 10, nil)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.LivePrice(ctx, "BTC", "USDT"); err != nil {
			t.Fatalf("LivePrice failed: %v", err)
		}
	}

	hist, ok := svc.History("BTC/USDT")
	if !ok {
		t.Fatal("History returned ok = false")
	}
	want := []float64{100, 101, 102}
	if !reflect.DeepEqual(hist, want) {
		t.Errorf("History = %v, want %v", hist, want)
	}
}

func TestLivePriceErrorLeavesHistoryUntouched(t *testing.T) {
	src := &fakeSource{prices: []float64{100}}
	svc := NewService(src, 10, nil)

	ctx := context.Background()
	if _, err := svc.LivePrice(ctx, "BTC", "USDT"); err != nil {
		t.Fatalf("LivePrice failed: %v", err)
	}

	src.err = errors.New("exchange down")
	if _, err := svc.LivePrice(ctx, "BTC", "USDT"); err == nil {
		t.Fatal("LivePrice succeeded, want error")
	}

	hist, _ := svc.History("BTC/USDT")
	if len(hist) != 1 {
		t.Errorf("history length = %d after failed fetch, want 1", len(hist))
	}
}

func TestHistoryUnknownSymbol(t *testing.T) {
	svc := NewService(&fakeSource{prices: []float64{1}}, 10, nil)

	if _, ok := svc.History("ETH/USDT"); ok {
		t.Error("History(unknown) ok = true, want false")
	}
}

func TestLatest(t *testing.T) {
	src := &fakeSource{prices: []float64{100, 200}}
	svc := NewService(src, 10, nil)

	ctx := context.Background()
	svc.LivePrice(ctx, "BTC", "USDT")
	svc.LivePrice(ctx, "BTC", "USDT")

	pp, ok := svc.Latest("BTC/USDT")
	if !ok {
		t.Fatal("Latest ok = false")
	}
	if pp.Price != 200 {
		t.Errorf("Latest price = %v, want 200", pp.Price)
	}
}
