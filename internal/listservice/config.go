package listservice

// SimpleConfig describes where a node serving the list service listens.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// IP returns the IP address from SimpleConfig
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// Addr returns the host:port the node listens on.
func (scfg *SimpleConfig) Addr() string {
	return scfg.IPAddr + ":" + scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}

// Options tune the storage of a SimpleListService.
type Options struct {
	// Capacity is the maximum number of lists hosted at once. Once it is
	// reached, creating a list evicts the least recently used one of its shard.
	Capacity int
	// Shards is the number of independently locked partitions of the store.
	Shards int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Capacity: 1024,
		Shards:   16,
	}
}
