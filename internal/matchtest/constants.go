package matchtest

// HTTP status code constants.
const (
	StatusOK = 200
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	// historyEmitCap mirrors the server's per-request history bound.
	historyEmitCap       = 5
	PercentageMultiplier = 100
)
