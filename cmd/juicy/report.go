package main

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/juicy/game"
)

type Report struct {
	// Configuration
	ConfigPath string
	Script     string
	TPS        int

	// Results
	game.Summary
}

// SimulatedTime is how much game time the run covered at the configured tick rate.
func (r *Report) SimulatedTime() time.Duration {
	if r.TPS <= 0 {
		return 0
	}
	return time.Duration(r.Frames) * time.Second / time.Duration(r.TPS)
}

const reportTemplate = `
# Headless Run Report

## Configuration
- **Config:** {{if .ConfigPath}}{{.ConfigPath}}{{else}}(defaults){{end}}
- **Script:** {{if .Script}}{{.Script}}{{else}}(no input){{end}}
- **Ticks Per Second:** {{.TPS}}

## Player
- **Frames:** {{.Frames}} ({{.SimulatedTime}} simulated, {{.Elapsed}} wall)
- **Final Position:** ({{f2 .Final.PosX}}, {{f2 .Final.PosY}})
- **Final Velocity:** {{f2 .Final.VelX}}
- **Final State:** {{.Final.State}} (animation frame {{.Final.AnimFrame}}, breath {{f2 .Final.Breath}})
- **Top Speed:** {{f2 .TopSpeed}}
- **Running / Idle Frames:** {{.RunningFrames}} / {{.IdleFrames}}
- **Draw Calls:** {{.DrawCalls}}

## Storage
- **Entities:** {{.Storage.TotalEntityCount}}
{{- range .Storage.ComponentBreakdown}}
  - {{.Name}}: {{.EntityCount}}
{{- end}}
- **Singletons:** {{join .Storage.SingletonTypes ", "}}

## Systems
{{template "systems" .Update}}
{{template "systems" .Draw}}
{{define "systems"}}
{{- range .Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{- end}}
{{- end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"f2": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"join": strings.Join,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
