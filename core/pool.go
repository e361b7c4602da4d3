package core

import (
	"context"
	"time"
)

// PoolSnapshot typed state of a lending pool fetched from the chain.
// Every numeric field is already decoded to its known scale.
type PoolSnapshot struct {
	PoolID      string              `json:"pool_id" yaml:"pool_id"`
	Name        string              `json:"name" yaml:"name"`
	Reserves    []*ReserveSnapshot  `json:"reserves" yaml:"reserves"`
	Backstop    *BackstopPool       `json:"backstop" yaml:"backstop"`
	Emissions   *EmissionsData      `json:"emissions,omitempty" yaml:"emissions"`
	Auctions    []*AuctionData      `json:"auctions,omitempty" yaml:"auctions"`
	Withdrawals []*QueuedWithdrawal `json:"withdrawals,omitempty" yaml:"withdrawals"`
	Prices      []*PriceTicker      `json:"prices,omitempty" yaml:"prices"`
	FetchedAt   time.Time           `json:"fetched_at" yaml:"fetched_at"`
}

// Reserve find reserve by asset id
func (p *PoolSnapshot) Reserve(assetID string) (*ReserveSnapshot, bool) {
	for _, r := range p.Reserves {
		if r.AssetID == assetID {
			return r, true
		}
	}

	return nil, false
}

// Auction find auction by id
func (p *PoolSnapshot) Auction(id string) (*AuctionData, bool) {
	for _, a := range p.Auctions {
		if a.ID == id {
			return a, true
		}
	}

	return nil, false
}

// Withdrawal find queued withdrawal by id
func (p *PoolSnapshot) Withdrawal(id string) (*QueuedWithdrawal, bool) {
	for _, w := range p.Withdrawals {
		if w.ID == id {
			return w, true
		}
	}

	return nil, false
}

// ISnapshotStore source of pool snapshots
type ISnapshotStore interface {
	Find(ctx context.Context, poolID string) (*PoolSnapshot, error)
	All(ctx context.Context) ([]*PoolSnapshot, error)
}
