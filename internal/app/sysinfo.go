package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// StatsMsg is a CPU and memory usage sample, both in percent.
type StatsMsg struct {
	CPU float64
	RAM float64
	Err error
}

// SampleStatsCmd samples system usage after delay. CPU usage is measured
// since the previous sample.
func SampleStatsCmd(delay time.Duration) tea.Cmd {
	sample := func() tea.Msg {
		percents, err := cpu.Percent(0, false)
		if err != nil {
			return StatsMsg{Err: err}
		}
		vm, err := mem.VirtualMemory()
		if err != nil {
			return StatsMsg{Err: err}
		}
		var c float64
		if len(percents) > 0 {
			c = percents[0]
		}
		return StatsMsg{CPU: c, RAM: vm.UsedPercent}
	}
	if delay <= 0 {
		return sample
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return sample() })
}
