package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrInvalidUtilization utilization outside [0, 1]
	ErrInvalidUtilization ErrorCode = 100100
	// ErrInvalidRateConfig malformed interest rate config
	ErrInvalidRateConfig ErrorCode = 100101
	// ErrClockRegression timestamp moved backwards
	ErrClockRegression ErrorCode = 100102
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100103
	// ErrInvalidPrice invalid price
	ErrInvalidPrice ErrorCode = 100104

	// ErrPoolNotFound no pool
	ErrPoolNotFound ErrorCode = 100200
	// ErrReserveNotFound no reserve
	ErrReserveNotFound ErrorCode = 100201
	// ErrAuctionNotFound no auction
	ErrAuctionNotFound ErrorCode = 100202
	// ErrWithdrawalNotFound no queued withdrawal
	ErrWithdrawalNotFound ErrorCode = 100203
	// ErrBackstopNotFound pool has no backstop
	ErrBackstopNotFound ErrorCode = 100204
)

var errorMessages = map[ErrorCode]string{
	ErrInvalidUtilization: "invalid utilization",
	ErrInvalidRateConfig:  "invalid interest rate config",
	ErrClockRegression:    "clock regression",
	ErrInvalidAmount:      "invalid amount",
	ErrInvalidPrice:       "invalid price",
	ErrPoolNotFound:       "pool not found",
	ErrReserveNotFound:    "reserve not found",
	ErrAuctionNotFound:    "auction not found",
	ErrWithdrawalNotFound: "withdrawal not found",
	ErrBackstopNotFound:   "backstop not found",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.String()
}

// IsNotFound not found class errors
func (e ErrorCode) IsNotFound() bool {
	return e >= ErrPoolNotFound && e < ErrPoolNotFound+100
}
