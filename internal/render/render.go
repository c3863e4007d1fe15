package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/stone-age-io/minifetch/internal/sysinfo"
	"github.com/stone-age-io/minifetch/internal/utils"
)

// Options controls presentation. The zero value renders plain, full output.
type Options struct {
	// Color enables ANSI styling. When false the output contains no escape
	// sequences at all.
	Color bool

	// Compact drops gauge rows and blank separator lines.
	Compact bool
}

const (
	labelWidth = 8
	gaugeWidth = 20
	columnGap  = "   "
)

// Render produces the full banner+facts block for a snapshot. It is a pure
// function: identical inputs yield byte-identical output. The result always
// ends with a newline. An empty banner drops the banner column entirely.
func Render(snap *sysinfo.Snapshot, banner string, opts Options) string {
	p := newPalette(opts.Color)

	facts := factLines(snap, p, opts)
	art := bannerLines(banner, p)

	if len(art) == 0 {
		return strings.Join(facts, "\n") + "\n"
	}

	width := 0
	for _, line := range art {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	rows := make([]string, 0, max(len(art), len(facts)))
	for i := 0; i < max(len(art), len(facts)); i++ {
		var left, right string
		if i < len(art) {
			left = art[i]
		}
		if i < len(facts) {
			right = facts[i]
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(left))
		rows = append(rows, strings.TrimRight(left+pad+columnGap+right, " "))
	}

	return strings.Join(rows, "\n") + "\n"
}

func bannerLines(banner string, p palette) []string {
	if banner == "" {
		return nil
	}
	raw := strings.Split(banner, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, p.banner.Render(line))
	}
	return lines
}

func factLines(snap *sysinfo.Snapshot, p palette, opts Options) []string {
	var lines []string

	add := func(label, value string) {
		padded := fmt.Sprintf("%-*s", labelWidth, label+":")
		lines = append(lines, p.label.Render(padded)+" "+value)
	}
	separator := func() {
		if !opts.Compact && len(lines) > 0 {
			lines = append(lines, "")
		}
	}
	gaugeRow := func(percent float64) {
		if !opts.Compact {
			lines = append(lines, strings.Repeat(" ", labelWidth+1)+gauge(percent, p))
		}
	}

	add("OS", stringOr(snap.OSName))
	add("Kernel", stringOr(snap.Kernel))
	add("Arch", stringOr(snap.Arch))

	if snap.Uptime != nil {
		add("Uptime", FormatUptime(*snap.Uptime))
	} else {
		add("Uptime", Placeholder)
	}

	add("CPU", stringOr(snap.CPUModel))
	if snap.Cores != nil {
		add("Cores", strconv.Itoa(*snap.Cores))
	} else {
		add("Cores", Placeholder)
	}
	add("Load", loadValue(snap, p))

	separator()
	add("Memory", memoryValue(snap.MemUsed, snap.MemTotal, p))
	if snap.MemUsed != nil && snap.MemTotal != nil {
		gaugeRow(utils.UsedPercent(*snap.MemUsed, *snap.MemTotal))
	}
	if snap.SwapTotal != nil && snap.SwapUsed != nil {
		add("Swap", memoryValue(snap.SwapUsed, snap.SwapTotal, p))
		gaugeRow(utils.UsedPercent(*snap.SwapUsed, *snap.SwapTotal))
	}

	if len(snap.Disks) > 0 {
		separator()
		for _, d := range snap.Disks {
			value := fmt.Sprintf("%s %s / %s %s",
				d.Mount,
				FormatBytes(d.Used),
				FormatBytes(d.Total),
				p.byPercent(d.UsedPercent).Render(fmt.Sprintf("(%.1f%%)", d.UsedPercent)))
			add("Disk", value)
			gaugeRow(d.UsedPercent)
		}
	}

	if len(snap.Ifaces) > 0 {
		separator()
		for _, ifc := range snap.Ifaces {
			add("Iface", ifc.Name+" "+strings.Join(ifc.Addrs, ", "))
		}
	}

	if len(snap.Nets) > 0 {
		separator()
		for _, n := range snap.Nets {
			add("Net", fmt.Sprintf("%s sent %s, recv %s",
				n.Name, humanize.IBytes(n.BytesSent), humanize.IBytes(n.BytesRecv)))
		}
	}

	if len(snap.Temps) > 0 {
		separator()
		for _, s := range snap.Temps {
			critical := s.Critical
			if critical <= 0 {
				critical = 100
			}
			reading := p.byPercent(s.Celsius / critical * 100).Render(fmt.Sprintf("%.1f°C", s.Celsius))
			add("Temp", s.Key+" "+reading)
		}
	}

	if len(snap.Users) > 0 {
		separator()
		for _, u := range snap.Users {
			terminal := u.Terminal
			if terminal == "" {
				terminal = "console"
			}
			value := fmt.Sprintf("%s on %s", u.Name, terminal)
			if u.Host != "" {
				value += " from " + u.Host
			}
			if !u.Started.IsZero() {
				value += p.dim.Render(" since " + u.Started.Format("Jan 2 15:04"))
			}
			add("User", value)
		}
	}

	return lines
}

func stringOr(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}

func memoryValue(used, total *uint64, p palette) string {
	if used == nil || total == nil {
		return Placeholder
	}
	percent := utils.UsedPercent(*used, *total)
	return fmt.Sprintf("%s / %s %s",
		FormatBytes(*used),
		FormatBytes(*total),
		p.byPercent(percent).Render(fmt.Sprintf("(%.1f%%)", percent)))
}

func loadValue(snap *sysinfo.Snapshot, p palette) string {
	if snap.Load == nil {
		return Placeholder
	}

	format := func(v float64) string {
		s := fmt.Sprintf("%.2f", v)
		if snap.Cores == nil || *snap.Cores == 0 {
			return s
		}
		// Color relative to core count: a load of 1.0 per core is 100%.
		return p.byPercent(v / float64(*snap.Cores) * 100).Render(s)
	}

	return format(snap.Load.Load1) + " " + format(snap.Load.Load5) + " " + format(snap.Load.Load15)
}

// gauge renders a fixed-width usage bar, filled proportionally to percent.
func gauge(percent float64, p palette) string {
	filled := int(math.Round(percent / 100 * gaugeWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	return p.byPercent(percent).Render(strings.Repeat("█", filled)) +
		p.dim.Render(strings.Repeat("░", gaugeWidth-filled))
}
