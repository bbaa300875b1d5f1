package utils

// Latency samples flowing from the handlers to the prometheus gauges.
// Buffered so a slow scrape never blocks an interaction handler.
type Metric struct {
	DatabaseRead       chan float64
	DatabaseWrite      chan float64
	DiscordSendMessage chan float64
}

func NewMetric() *Metric {
	return &Metric{
		DatabaseRead:       make(chan float64, 8),
		DatabaseWrite:      make(chan float64, 8),
		DiscordSendMessage: make(chan float64, 8),
	}
}
