package sysinfo

import "time"

// Snapshot is the set of system facts gathered for a single run. It is built
// once by Collector.Collect and read-only afterwards.
//
// Scalar facts are pointer-typed: nil means the underlying OS query failed and
// the fact is absent for this run. List facts are nil when their query failed
// or returned nothing usable.
type Snapshot struct {
	Hostname *string
	OSName   *string // platform name plus version, e.g. "Ubuntu 24.04"
	Kernel   *string
	Arch     *string

	Uptime *time.Duration

	MemTotal  *uint64 // bytes
	MemUsed   *uint64
	SwapTotal *uint64
	SwapUsed  *uint64

	CPUModel *string
	Cores    *int

	Load *LoadAvg

	Disks  []DiskUsage
	Ifaces []NetInterface
	Nets   []NetTraffic
	Temps  []TempSensor
	Users  []Session
}

// LoadAvg holds the 1/5/15 minute load averages.
type LoadAvg struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// DiskUsage describes space usage for one mounted filesystem.
type DiskUsage struct {
	Mount       string
	Device      string
	Total       uint64 // bytes
	Used        uint64
	UsedPercent float64
}

// NetInterface describes one up, addressable network interface.
type NetInterface struct {
	Name  string
	MAC   string
	Addrs []string // IPv4 addresses in CIDR notation
}

// NetTraffic holds cumulative byte counters for one network interface.
type NetTraffic struct {
	Name      string
	BytesSent uint64
	BytesRecv uint64
}

// TempSensor is one hardware temperature reading.
type TempSensor struct {
	Key      string
	Celsius  float64
	Critical float64 // 0 when the sensor reports no critical threshold
}

// Session describes one logged-in user session.
type Session struct {
	Name     string
	Terminal string
	Host     string
	Started  time.Time
}
