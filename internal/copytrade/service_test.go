package copytrade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quantfeed/tradeboard/internal/model"
)

func TestRegisterTraderAssignsID(t *testing.T) {
	svc := NewService(nil)

	got := svc.RegisterTrader(model.Trader{Name: "alice", ROI: 12.5, PortfolioValue: 5000})
	if got.TraderID == "" {
		t.Fatal("TraderID is empty, want generated uuid")
	}

	stored, ok := svc.Trader(got.TraderID)
	if !ok {
		t.Fatal("Trader not found after registration")
	}
	if stored.Name != "alice" {
		t.Errorf("Name = %q, want %q", stored.Name, "alice")
	}
}

func TestRegisterTraderUpdateReranks(t *testing.T) {
	svc := NewService(nil)

	a := svc.RegisterTrader(model.Trader{Name: "a", ROI: 10})
	svc.RegisterTrader(model.Trader{Name: "b", ROI: 20})

	// Push a to the top.
	svc.RegisterTrader(model.Trader{TraderID: a.TraderID, Name: "a", ROI: 30})

	top := svc.TopTraders(1)
	if len(top) != 1 || top[0].TraderID != a.TraderID {
		t.Errorf("top trader = %+v, want %s", top, a.TraderID)
	}
	if top[0].ROI != 30 {
		t.Errorf("top ROI = %v, want 30", top[0].ROI)
	}
}

func TestTopTradersOrderAndLimit(t *testing.T) {
	svc := NewService(nil)
	svc.RegisterTrader(model.Trader{Name: "low", ROI: 1})
	svc.RegisterTrader(model.Trader{Name: "high", ROI: 50})
	svc.RegisterTrader(model.Trader{Name: "mid", ROI: 25})
	svc.RegisterTrader(model.Trader{Name: "neg", ROI: -10})

	top := svc.TopTraders(3)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	for i, name := range []string{"high", "mid", "low"} {
		if top[i].Name != name {
			t.Errorf("top[%d].Name = %q, want %q", i, top[i].Name, name)
		}
	}
}

func TestAddFollower(t *testing.T) {
	svc := NewService(nil)
	leader := svc.RegisterTrader(model.Trader{Name: "leader", ROI: 10})
	follower := svc.RegisterTrader(model.Trader{Name: "follower", ROI: 0})

	if err := svc.AddFollower(leader.TraderID, follower.TraderID); err != nil {
		t.Fatalf("AddFollower failed: %v", err)
	}
	// Idempotent.
	if err := svc.AddFollower(leader.TraderID, follower.TraderID); err != nil {
		t.Fatalf("AddFollower (repeat) failed: %v", err)
	}

	if err := svc.AddFollower(leader.TraderID, "unknown"); !errors.Is(err, ErrTraderNotFound) {
		t.Errorf("AddFollower(unknown follower) = %v, want ErrTraderNotFound", err)
	}
	if err := svc.AddFollower("unknown", follower.TraderID); !errors.Is(err, ErrTraderNotFound) {
		t.Errorf("AddFollower(unknown leader) = %v, want ErrTraderNotFound", err)
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	svc := NewService(nil)
	leader := svc.RegisterTrader(model.Trader{Name: "leader", ROI: 10})

	if _, err := svc.SubmitOrder(model.Order{LeaderID: "nope", Side: model.Buy}); !errors.Is(err, ErrLeaderNotFound) {
		t.Errorf("SubmitOrder(unknown leader) = %v, want ErrLeaderNotFound", err)
	}
	if _, err := svc.SubmitOrder(model.Order{LeaderID: leader.TraderID, Side: "HOLD"}); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("SubmitOrder(bad side) = %v, want ErrInvalidSide", err)
	}

	o, err := svc.SubmitOrder(model.Order{
		LeaderID: leader.TraderID,
		Side:     model.Buy,
		Symbol:   "BTC/USDT",
		Quantity: 0.5,
		Price:    50000,
	})
	if err != nil {
		t.Fatalf("SubmitOrder failed: %v", err)
	}
	if o.OrderID == "" {
		t.Error("OrderID is empty, want generated uuid")
	}
	if o.Timestamp == 0 {
		t.Error("Timestamp is zero, want server-assigned")
	}
	if svc.QueuedOrders() != 1 {
		t.Errorf("QueuedOrders = %d, want 1", svc.QueuedOrders())
	}
}

func TestProcessOrdersAppliesFees(t *testing.T) {
	svc := NewService(nil)
	leader := svc.RegisterTrader(model.Trader{Name: "leader", ROI: 10})
	follower := svc.RegisterTrader(model.Trader{Name: "follower", ROI: 0, PortfolioValue: 10000})
	svc.AddFollower(leader.TraderID, follower.TraderID)

	// BUY 0.1 @ 50000 = 5000 value, fee 5. SELL same value credits 4995.
	svc.SubmitOrder(model.Order{LeaderID: leader.TraderID, Side: model.Buy, Symbol: "BTC/USDT", Quantity: 0.1, Price: 50000})
	svc.SubmitOrder(model.Order{LeaderID: leader.TraderID, Side: model.Sell, Symbol: "BTC/USDT", Quantity: 0.1, Price: 50000})

	results := svc.ProcessOrders()
	if len(results) != 2 {
		t.Fatalf("executions = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Status != "executed" {
			t.Errorf("status = %q, want executed", r.Status)
		}
	}

	got, _ := svc.Trader(follower.TraderID)
	want := 10000.0 - 5 + 4995
	if got.PortfolioValue != want {
		t.Errorf("PortfolioValue = %v, want %v", got.PortfolioValue, want)
	}

	if svc.QueuedOrders() != 0 {
		t.Errorf("QueuedOrders after drain = %d, want 0", svc.QueuedOrders())
	}
}

func TestProcessOrdersNoFollowers(t *testing.T) {
	svc := NewService(nil)
	leader := svc.RegisterTrader(model.Trader{Name: "leader", ROI: 10})
	svc.SubmitOrder(model.Order{LeaderID: leader.TraderID, Side: model.Buy, Symbol: "BTC/USDT", Quantity: 1, Price: 100})

	results := svc.ProcessOrders()
	if len(results) != 0 {
		t.Errorf("executions = %d, want 0", len(results))
	}
	if svc.QueuedOrders() != 0 {
		t.Errorf("QueuedOrders = %d, want 0 (order consumed)", svc.QueuedOrders())
	}
}

func TestProcessorStartStop(t *testing.T) {
	svc := NewService(nil)
	leader := svc.RegisterTrader(model.Trader{Name: "leader", ROI: 10})
	follower := svc.RegisterTrader(model.Trader{Name: "follower", ROI: 0, PortfolioValue: 1000})
	svc.AddFollower(leader.TraderID, follower.TraderID)

	p := NewProcessor(10*time.Millisecond, svc, nil)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	svc.SubmitOrder(model.Order{LeaderID: leader.TraderID, Side: model.Sell, Symbol: "BTC/USDT", Quantity: 1, Price: 100})

	deadline := time.After(time.Second)
	for svc.QueuedOrders() > 0 {
		select {
		case <-deadline:
			t.Fatal("order not processed within 1s")
		case <-time.After(5 * time.Millisecond):
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	got, _ := svc.Trader(follower.TraderID)
	if got.PortfolioValue != 1000+100*(1-feeRate) {
		t.Errorf("PortfolioValue = %v, want %v", got.PortfolioValue, 1000+100*(1-feeRate))
	}
}
