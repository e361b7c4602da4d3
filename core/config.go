package core

import "time"

// Config blend config
type Config struct {
	App         App            `json:"app"`
	Snapshot    Snapshot       `json:"snapshot"`
	PriceOracle PriceOracle    `json:"price_oracle"`
	Worker      Worker         `json:"worker"`
	Policy      BackstopPolicy `json:"policy"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Snapshot pool snapshot source config
type Snapshot struct {
	// directory of <pool_id>.yaml files
	Dir      string        `json:"dir"`
	CacheTTL time.Duration `json:"cache_ttl"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string        `json:"end_point"`
	Timeout  time.Duration `json:"timeout"`
}

// Worker worker config
type Worker struct {
	// cron spec of the modifier advance job
	Spec string `json:"spec"`
}

// BackstopPolicy backstop policy constants. Zero values are filled with the
// protocol defaults when the config is loaded.
type BackstopPolicy struct {
	Q4WBaseDelay time.Duration `json:"q4w_base_delay"`
	Q4WMaxDelay  time.Duration `json:"q4w_max_delay"`
	// utilization above which the base delay is multiplied by HighUtilizationFactor
	HighUtilization       float64 `json:"high_utilization"`
	HighUtilizationFactor float64 `json:"high_utilization_factor"`
	// tokens below LowBufferRatio * min threshold multiply the delay by LowBufferFactor
	LowBufferRatio  float64 `json:"low_buffer_ratio"`
	LowBufferFactor float64 `json:"low_buffer_factor"`

	// margins above the min threshold for withdrawal severity
	MediumSeverityMargin float64 `json:"medium_severity_margin"`
	LowSeverityMargin    float64 `json:"low_severity_margin"`

	AuctionDurations       map[Urgency]time.Duration           `json:"auction_durations"`
	StartingBidMultipliers map[AuctionType]map[Urgency]float64 `json:"starting_bid_multipliers"`
	// reserve = starting bid * (1 + premium), capped at the asset value
	ReservePremium float64 `json:"reserve_premium"`
	// min bid increment as a fraction of the asset value
	MinBidIncrement float64 `json:"min_bid_increment"`
	// auction creators may not bid on their own auctions unless allowed
	AllowCreatorBids bool          `json:"allow_creator_bids"`
	EndingSoonWindow time.Duration `json:"ending_soon_window"`
}
