package sysinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stone-age-io/minifetch/internal/utils"
	"go.uber.org/zap"
)

// Collector gathers system facts using gopsutil.
type Collector struct {
	logger *zap.Logger
}

// New creates a gopsutil-based collector.
func New(logger *zap.Logger) *Collector {
	return &Collector{logger: logger}
}

// Collect queries the OS once per fact and returns the resulting snapshot.
// Every query is independent: a failure degrades that one fact to absent and
// is logged at Warn, never aborting the run. Collect itself cannot fail.
func (c *Collector) Collect(ctx context.Context) *Snapshot {
	snap := &Snapshot{}

	c.collectHost(ctx, snap)
	c.collectUptime(ctx, snap)
	c.collectMemory(ctx, snap)
	c.collectSwap(ctx, snap)
	c.collectCPU(ctx, snap)
	c.collectLoad(ctx, snap)

	snap.Disks = c.collectDisks(ctx)
	snap.Ifaces = c.collectIfaces(ctx)
	snap.Nets = c.collectNets(ctx)
	snap.Temps = c.collectTemps(ctx)
	snap.Users = c.collectUsers(ctx)

	return snap
}

func (c *Collector) collectHost(ctx context.Context, snap *Snapshot) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to collect host info", zap.Error(err))
		return
	}

	if info.Hostname != "" {
		snap.Hostname = &info.Hostname
	}
	if info.Platform != "" {
		osName := strings.TrimSpace(fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion))
		snap.OSName = &osName
	}
	if info.KernelVersion != "" {
		snap.Kernel = &info.KernelVersion
	}
	if info.KernelArch != "" {
		snap.Arch = &info.KernelArch
	}
}

func (c *Collector) collectUptime(ctx context.Context, snap *Snapshot) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to collect uptime", zap.Error(err))
		return
	}
	up := time.Duration(secs) * time.Second
	snap.Uptime = &up
}

func (c *Collector) collectMemory(ctx context.Context, snap *Snapshot) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to collect memory info", zap.Error(err))
		return
	}
	snap.MemTotal = &vmem.Total
	snap.MemUsed = &vmem.Used
}

func (c *Collector) collectSwap(ctx context.Context, snap *Snapshot) {
	smem, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to collect swap info", zap.Error(err))
		return
	}
	// A machine without swap reports total 0; treat that as "no swap fact"
	// rather than a 0/0 line.
	if smem.Total == 0 {
		return
	}
	snap.SwapTotal = &smem.Total
	snap.SwapUsed = &smem.Used
}

func (c *Collector) collectCPU(ctx context.Context, snap *Snapshot) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to collect CPU info", zap.Error(err))
	} else if len(infos) > 0 && infos[0].ModelName != "" {
		model := strings.TrimSpace(infos[0].ModelName)
		snap.CPUModel = &model
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		c.logger.Warn("Failed to collect CPU count", zap.Error(err))
		return
	}
	if cores > 0 {
		snap.Cores = &cores
	}
}

func (c *Collector) collectLoad(ctx context.Context, snap *Snapshot) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		// Not supported everywhere (e.g. Windows); absent is fine.
		c.logger.Debug("Load average unavailable", zap.Error(err))
		return
	}
	snap.Load = &LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
}

func (c *Collector) collectDisks(ctx context.Context) []DiskUsage {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		c.logger.Warn("Failed to list partitions", zap.Error(err))
		return nil
	}

	var disks []DiskUsage
	seen := make(map[string]bool)

	for _, partition := range partitions {
		if shouldSkipPartition(partition) || seen[partition.Mountpoint] {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, partition.Mountpoint)
		if err != nil {
			c.logger.Debug("Could not get disk usage",
				zap.String("mountpoint", partition.Mountpoint),
				zap.Error(err))
			continue
		}

		// Skip small partitions (< 1GB)
		if usage.Total < 1024*1024*1024 {
			continue
		}

		disks = append(disks, DiskUsage{
			Mount:       partition.Mountpoint,
			Device:      partition.Device,
			Total:       usage.Total,
			Used:        usage.Used,
			UsedPercent: utils.Round(usage.UsedPercent),
		})
		seen[partition.Mountpoint] = true
	}

	return disks
}

func (c *Collector) collectNets(ctx context.Context) []NetTraffic {
	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		c.logger.Warn("Failed to collect network counters", zap.Error(err))
		return nil
	}

	var nets []NetTraffic
	for _, nic := range counters {
		if strings.HasPrefix(nic.Name, "lo") {
			continue
		}
		if nic.BytesSent == 0 && nic.BytesRecv == 0 {
			continue
		}
		nets = append(nets, NetTraffic{
			Name:      nic.Name,
			BytesSent: nic.BytesSent,
			BytesRecv: nic.BytesRecv,
		})
	}

	return nets
}

func (c *Collector) collectIfaces(ctx context.Context) []NetInterface {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		c.logger.Warn("Failed to list network interfaces", zap.Error(err))
		return nil
	}

	var out []NetInterface
	for _, ifc := range ifaces {
		if hasFlag(ifc.Flags, "loopback") || !hasFlag(ifc.Flags, "up") {
			continue
		}

		// IPv4 only; v6 link-locals on every interface would drown the list.
		var addrs []string
		for _, a := range ifc.Addrs {
			if strings.Contains(a.Addr, ".") {
				addrs = append(addrs, a.Addr)
			}
		}
		if len(addrs) == 0 {
			continue
		}

		out = append(out, NetInterface{
			Name:  ifc.Name,
			MAC:   ifc.HardwareAddr,
			Addrs: addrs,
		})
	}

	return out
}

func (c *Collector) collectTemps(ctx context.Context) []TempSensor {
	// gopsutil reports partial results alongside a Warnings error; use
	// whatever came back.
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		// No sensors on most VMs and containers; absent is fine.
		c.logger.Debug("Temperature sensors unavailable", zap.Error(err))
		return nil
	}

	var sensors []TempSensor
	for _, s := range temps {
		if s.SensorKey == "" || s.Temperature == 0 {
			continue
		}
		sensors = append(sensors, TempSensor{
			Key:      s.SensorKey,
			Celsius:  s.Temperature,
			Critical: s.Critical,
		})
	}

	return sensors
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func (c *Collector) collectUsers(ctx context.Context) []Session {
	users, err := host.UsersWithContext(ctx)
	if err != nil {
		// Fails in containers and on systems without utmp; absent is fine.
		c.logger.Debug("User sessions unavailable", zap.Error(err))
		return nil
	}

	var sessions []Session
	for _, u := range users {
		if u.User == "" {
			continue
		}
		sessions = append(sessions, Session{
			Name:     u.User,
			Terminal: u.Terminal,
			Host:     u.Host,
			Started:  time.Unix(int64(u.Started), 0),
		})
	}

	return sessions
}

// shouldSkipPartition returns true for pseudo filesystems that have no
// meaningful space usage.
func shouldSkipPartition(partition disk.PartitionStat) bool {
	skipFsTypes := map[string]bool{
		"devfs":    true,
		"devtmpfs": true,
		"tmpfs":    true,
		"squashfs": true,
		"overlay":  true,
		"proc":     true,
		"sysfs":    true,
		"cgroup":   true,
		"cgroup2":  true,
	}
	if skipFsTypes[partition.Fstype] {
		return true
	}
	// Loop-mounted images (snaps etc.) show up as full read-only disks.
	return strings.Contains(partition.Device, "loop")
}
