package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/flowlab/internal/dynamo"
	"github.com/san-kum/flowlab/internal/hydro"
)

// WriteAtmosphereCSV writes an integrated atmosphere profile as
// altitude_m, temperature_K, pressure_Pa, density_kgm3 rows.
func WriteAtmosphereCSV(path string, points []hydro.AtmospherePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"altitude_m", "temperature_K", "pressure_Pa", "density_kgm3"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Altitude.Meters(), 'g', -1, 64),
			strconv.FormatFloat(p.Temperature.Kelvin(), 'g', -1, 64),
			strconv.FormatFloat(p.Pressure.Pascals(), 'g', -1, 64),
			strconv.FormatFloat(p.Density.KgPerCubicMeter(), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteTrajectoryCSV writes an integration result as time plus one column
// per state component.
func WriteTrajectoryCSV(path string, result *dynamo.Result) error {
	if len(result.States) == 0 {
		return fmt.Errorf("export: empty trajectory")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"t"}
	for i := range result.States[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for k, state := range result.States {
		row := make([]string, 0, len(state)+1)
		row = append(row, strconv.FormatFloat(result.Times[k], 'g', -1, 64))
		for _, v := range state {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
