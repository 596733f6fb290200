package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/storage"
)

type ExportData struct {
	Run      *storage.RunMetadata `json:"run"`
	Numeric  dynamo.Trajectory    `json:"numeric"`
	Analytic dynamo.Trajectory    `json:"analytic"`
}

func JSON(w io.Writer, meta *storage.RunMetadata, numeric, analytic dynamo.Trajectory) error {
	data := ExportData{
		Run:      meta,
		Numeric:  numeric,
		Analytic: analytic,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
