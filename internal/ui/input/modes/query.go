package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pokesearch/internal/ui/input/types"
)

type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model, keys Bindings) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", ti, keys),
	}
}
