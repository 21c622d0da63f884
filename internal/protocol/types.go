package protocol

// Wire format: no framing or length prefixes. Message boundaries are
// fixed sizes known to both sides by convention.
const (
	// ProbeByte is sent by the client once per RTT exchange.
	ProbeByte = 'M'
	// AckByte is sent by the server for every probe and every chunk.
	AckByte = 'A'

	// MarkerSize is the size of a probe or ack message.
	MarkerSize = 1

	// DefaultChunkSize is the payload size of one stop-and-wait chunk.
	DefaultChunkSize = 80_000
	// DefaultExchanges is the number of probe/ack round trips before
	// any chunk is sent. The client collects one RTT sample per
	// exchange; the server collects one fewer.
	DefaultExchanges = 8
	// DefaultEstimateWindow is how many trailing RTT samples feed the
	// estimate. Earlier samples are skewed by connection warm-up.
	DefaultEstimateWindow = 4
)
