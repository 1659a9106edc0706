package export

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Name        string       `json:"name,omitempty"`
	Integrator  string       `json:"integrator"`
	Dt          float64      `json:"dt"`
	Steps       int          `json:"steps"`
	Elapsed     float64      `json:"elapsed"`
	Initial     InitialState `json:"initial"`
	Times       []float64    `json:"times"`
	Positions   [][2]float64 `json:"positions"`
	Reference   [][2]float64 `json:"reference"`
	Errors      []float64    `json:"errors"`
	MaxError    float64      `json:"max_error"`
	FinalError  float64      `json:"final_error"`
	EnergyDrift float64      `json:"energy_drift"`
}

type InitialState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

func NewExportData(run Run) ExportData {
	cmp := run.compare()

	data := ExportData{
		Name:       run.Name,
		Integrator: "euler",
		Dt:         run.Config.Dt,
		Steps:      len(run.Result.Positions),
		Elapsed:    run.Result.Elapsed(),
		Initial: InitialState{
			X:  run.Initial.Pos.X,
			Y:  run.Initial.Pos.Y,
			VX: run.Initial.Vel.X,
			VY: run.Initial.Vel.Y,
		},
		Times:       run.Result.Times,
		Positions:   make([][2]float64, len(run.Result.Positions)),
		Reference:   make([][2]float64, len(cmp.Reference)),
		Errors:      cmp.Errors,
		MaxError:    cmp.MaxError,
		FinalError:  cmp.FinalError,
		EnergyDrift: run.Result.EnergyDrift,
	}

	for i, p := range run.Result.Positions {
		data.Positions[i] = [2]float64{p.X, p.Y}
	}
	for i, p := range cmp.Reference {
		data.Reference[i] = [2]float64{p.X, p.Y}
	}

	return data
}

func WriteJSON(w io.Writer, run Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(run))
}
