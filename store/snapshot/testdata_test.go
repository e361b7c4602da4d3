package snapshot

const poolYAML = `
pool_id: pool-a
name: Fixed XLM-USDC
fetched_at: 2024-01-01T00:00:00Z
reserves:
  - asset_id: usdc
    symbol: USDC
    decimals: 7
    config:
      target_util: "7500000"
      r_base: "100000"
      r_one: "500000"
      r_two: "5000000"
      r_three: "15000000"
      reactivity: "200"
      ir_mod: "10000000"
    b_rate: "1000000000000"
    d_rate: "1000000000000"
    b_supply: "1000000000000"
    d_supply: "700000000000"
    backstop_credit: "0"
    last_time: 2024-01-01T00:00:00Z
backstop:
  min_threshold: "5000000000"
  max_capacity: "10000000000"
  take_rate: "2000000"
  total_backstop_tokens: "7000000000"
  total_lp_tokens: "3500000000"
  total_value_usd: "350000"
  status: active
emissions:
  emissions_per_second: "10000000"
  total_allocated: "1000000000000000"
  total_claimed: "0"
  end_time: 2025-01-01T00:00:00Z
  token_price_usd: "0.05"
auctions:
  - id: auction-1
    auction_type: bad_debt
    creator: GCREATOR
    asset_address: usdc
    asset_amount: "1000000000"
    starting_bid: "500"
    current_bid: "0"
    reserve_price: "550"
    min_bid_increment: "10"
    start_time: 2024-01-01T00:00:00Z
    duration: 1h
withdrawals:
  - id: w-1
    user_address: GUSER
    backstop_token_amount: "1000000000"
    lp_token_amount: "500000000"
    queued_at: 2024-01-01T00:00:00Z
    executable_at: 2024-01-22T00:00:00Z
    status: queued
prices:
  - asset_id: usdc
    symbol: USDC
    price: "1"
`
