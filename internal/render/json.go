package render

import (
	"encoding/json"
	"io"

	"github.com/vk/taskorder/internal/scheduler"
)

func writeJSON(w io.Writer, res scheduler.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
