package plot

import (
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Theme selects the chart colour scheme.
type Theme string

// Chart themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type palette struct {
	echarts    string
	background string
	text       string
	textMuted  string
	axis       string
	grid       string
	accent     string
}

var palettes = map[Theme]palette{
	ThemeLight: {
		echarts:    types.ThemeWesteros,
		background: "#ffffff",
		text:       "#1f2328",
		textMuted:  "#59636e",
		axis:       "#d1d9e0",
		grid:       "#eff2f5",
		accent:     "#0969da",
	},
	ThemeDark: {
		echarts:    types.ThemeChalk,
		background: "#0d1117",
		text:       "#e6edf3",
		textMuted:  "#8b949e",
		axis:       "#30363d",
		grid:       "#21262d",
		accent:     "#58a6ff",
	},
}

// chartOpts builds themed go-echarts options.
type chartOpts struct {
	p palette
}

func newChartOpts(theme Theme) chartOpts {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeLight]
	}

	return chartOpts{p: p}
}

func (c chartOpts) init(width, height string) opts.Initialization {
	return opts.Initialization{
		Width:           width,
		Height:          height,
		BackgroundColor: c.p.background,
		Theme:           c.p.echarts,
	}
}

func (c chartOpts) title(title, subtitle string) opts.Title {
	return opts.Title{
		Title:         title,
		Subtitle:      subtitle,
		Left:          "center",
		TitleStyle:    &opts.TextStyle{Color: c.p.text},
		SubtitleStyle: &opts.TextStyle{Color: c.p.textMuted},
	}
}

func (c chartOpts) tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

func (c chartOpts) xAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.p.textMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.p.axis}},
	}
}

func (c chartOpts) yAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.p.textMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.p.axis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.p.grid},
		},
	}
}

func (c chartOpts) legend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Type:      "scroll",
		Top:       "bottom",
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: c.p.textMuted},
	}
}
