package desktop

import (
	"fmt"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/rbright/taskar/internal/action"
)

// Metric is one system status query.
type Metric string

const (
	Battery Metric = "battery"
	Memory  Metric = "memory"
	CPU     Metric = "cpu"
)

// BatteryInfo is one battery reading.
type BatteryInfo struct {
	Percent  float64
	Charging bool
}

// Metrics is the system-metrics collaborator. It is an optional host
// integration; any method may fail on hosts without the underlying data.
type Metrics interface {
	Battery() (BatteryInfo, error)
	MemoryPercent() (float64, error)
	CPUPercent() (float64, error)
}

// hostMetrics is the production Metrics over gopsutil and distatus/battery.
type hostMetrics struct{}

func (hostMetrics) Battery() (BatteryInfo, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return BatteryInfo{}, fmt.Errorf("read batteries: %w", err)
	}
	if len(batteries) == 0 {
		return BatteryInfo{}, fmt.Errorf("no battery present")
	}

	b := batteries[0]
	percent := 0.0
	if b.Full > 0 {
		percent = b.Current / b.Full * 100
	}
	return BatteryInfo{
		Percent:  percent,
		Charging: b.State.Raw == battery.Charging,
	}, nil
}

func (hostMetrics) MemoryPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("read memory: %w", err)
	}
	return vm.UsedPercent, nil
}

func (hostMetrics) CPUPercent() (float64, error) {
	percents, err := cpu.Percent(500*time.Millisecond, false)
	if err != nil {
		return 0, fmt.Errorf("read cpu: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("no cpu sample available")
	}
	return percents[0], nil
}

// Status answers one metric query with a formatted numeric summary, or an
// explicit "unavailable" result when the collaborator is absent or the
// host lacks the reading.
func (s *Surface) Status(metric Metric) action.Result {
	if s.metrics == nil {
		return action.Unavailable("system status", "")
	}

	switch metric {
	case Battery:
		info, err := s.metrics.Battery()
		if err != nil {
			return action.Unavailable("battery status", err.Error())
		}
		state := "discharging"
		if info.Charging {
			state = "charging"
		}
		return action.Success("Battery is at %.0f%% (%s).", info.Percent, state)
	case Memory:
		percent, err := s.metrics.MemoryPercent()
		if err != nil {
			return action.Unavailable("memory status", err.Error())
		}
		return action.Success("Memory usage is at %.0f%%.", percent)
	case CPU:
		percent, err := s.metrics.CPUPercent()
		if err != nil {
			return action.Unavailable("cpu status", err.Error())
		}
		return action.Success("CPU usage is at %.0f%%.", percent)
	default:
		return action.Failure(action.ClassValidation, "Unknown status metric %q.", metric)
	}
}
