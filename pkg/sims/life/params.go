package life

import (
	"strconv"

	"torus-life/pkg/core"
	"torus-life/pkg/kernel"
)

// Parameters reports the configuration and run statistics for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				intParam("percent", "Initial density %", l.cfg.Percent),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				{Key: "kernel", Label: "Kernel", Value: l.stepper.Name()},
				intParam("workers", "Workers", l.cfg.Workers),
				{Key: "cpu", Label: "CPU", Value: kernel.CPUFeatures().String()},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.gen),
				intParam("population", "Population", l.Population()),
				{Key: "last_advance", Label: "Last advance", Value: l.last.String()},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.FormatInt(value, 10)}
}
