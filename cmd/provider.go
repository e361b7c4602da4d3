package cmd

import (
	"blend/core"
	backstopservice "blend/service/backstop"
	marketservice "blend/service/market"
	"blend/service/oracle"
	"blend/store/ratemodifier"
	"blend/store/snapshot"
	"time"
)

func provideConfig() *core.Config {
	return &cfg
}

func provideSnapshotStore() core.ISnapshotStore {
	return snapshot.Cache(snapshot.New(cfg.Snapshot.Dir), cfg.Snapshot.CacheTTL)
}

func provideModifierStore() core.IRateModifierStore {
	return ratemodifier.New(time.Now)
}

func provideMarketService(modifiers core.IRateModifierStore) core.IMarketService {
	return marketservice.New(modifiers)
}

func providePriceService() core.IPriceOracleService {
	return oracle.New(cfg.PriceOracle)
}

func provideBackstopService(marketSrv core.IMarketService, priceSrv core.IPriceOracleService) core.IBackstopService {
	return backstopservice.New(cfg.Policy, marketSrv, priceSrv)
}
