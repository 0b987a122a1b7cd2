package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

// PropLineSeparator selects the line terminator of generated files: lf, cr, crlf or system
const PropLineSeparator = "lineSeparator"

var lineSeparators = map[string]func() string{
	"lf":     func() string { return "\n" },
	"cr":     func() string { return "\r" },
	"crlf":   func() string { return "\r\n" },
	"system": utils.SystemLineSeparator,
}

// LineSeparatorPlugin sets the process-wide line terminator used when rendering.
// Unknown or missing values leave the current terminator unchanged.
type LineSeparatorPlugin struct {
	Adapter
}

// NewLineSeparatorPlugin creates the plugin
func NewLineSeparatorPlugin() *LineSeparatorPlugin {
	return &LineSeparatorPlugin{}
}

func (p *LineSeparatorPlugin) Name() string {
	return "LineSeparatorPlugin"
}

func (p *LineSeparatorPlugin) SetProperties(props config.Properties) {
	p.Adapter.SetProperties(props)
	if sep, ok := lineSeparators[props[PropLineSeparator]]; ok {
		utils.SetLineSeparator(sep())
	}
}
