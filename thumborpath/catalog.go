package thumborpath

import (
	"fmt"
	"sort"
)

// Kind how an operation token is placed in the configuration
type Kind int

const (
	// Part structural token appended in invocation order
	Part Kind = iota
	// Geometry structural token, at most one active at a time
	Geometry
	// Filter token rendered under the filters: prefix
	Filter
)

// FormatFunc renders operation arguments into the token text
type FormatFunc func(args ...interface{}) string

// Entry catalog entry.
// Guard, if set, rejects arguments that must not produce a token
type Entry struct {
	Kind   Kind
	Format FormatFunc
	Guard  func(args ...interface{}) bool
}

// Catalog operation name to entry
type Catalog map[string]Entry

// Operation names of the Default catalog
const (
	Resize          = "resize"
	FitIn           = "fitIn"
	SmartCrop       = "smartCrop"
	HAlign          = "hAlign"
	VAlign          = "vAlign"
	MetaDataOnly    = "metaDataOnly"
	Crop            = "crop"
	AutoJpg         = "autoJpg"
	BackgroundColor = "backgroundColor"
	Blur            = "blur"
	Brightness      = "brightness"
	Contrast        = "contrast"
	Convolution     = "convolution"
	Equalize        = "equalize"
	ExtractFocal    = "extractFocal"
	Fill            = "fill"
	Focal           = "focal"
	Format          = "format"
	Grayscale       = "grayscale"
	MaxBytes        = "maxBytes"
	NoUpscale       = "noUpscale"
	Noise           = "noise"
	Proportion      = "proportion"
	Quality         = "quality"
	RGB             = "rgb"
	Rotate          = "rotate"
	RoundCorner     = "roundCorner"
	Sharpen         = "sharpen"
	StripExif       = "stripExif"
)

// Literal entry with fixed token text
func Literal(kind Kind, token string) Entry {
	return Entry{Kind: kind, Format: func(...interface{}) string {
		return token
	}}
}

// FilterFunc filter entry rendering name(arg1, arg2, ...) with positional args
func FilterFunc(name string) Entry {
	return Entry{Kind: Filter, Format: func(args ...interface{}) string {
		return name + "(" + joinArgs(args) + ")"
	}}
}

func joinArgs(args []interface{}) string {
	var s string
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += FormatArg(a)
	}
	return s
}

func size(args ...interface{}) string {
	return fmt.Sprintf("%s%sx%s%s",
		dashIf(arg(args, 2)), FormatArg(arg(args, 0)),
		dashIf(arg(args, 3)), FormatArg(arg(args, 1)))
}

func rect(args ...interface{}) string {
	return fmt.Sprintf("%sx%s:%sx%s",
		FormatArg(arg(args, 0)), FormatArg(arg(args, 1)),
		FormatArg(arg(args, 2)), FormatArg(arg(args, 3)))
}

func filter(name string, args ...interface{}) string {
	return name + "(" + joinArgs(args) + ")"
}

// Default thumbor operation catalog
var Default = Catalog{
	Resize: {Kind: Geometry, Format: size},
	FitIn: {Kind: Geometry, Format: func(args ...interface{}) string {
		return "fit-in/" + size(arg(args, 0), arg(args, 1))
	}},
	SmartCrop: Literal(Part, "smart"),
	HAlign: {Kind: Part, Format: func(args ...interface{}) string {
		return FormatArg(arg(args, 0))
	}},
	VAlign: {Kind: Part, Format: func(args ...interface{}) string {
		return FormatArg(arg(args, 0))
	}},
	MetaDataOnly: Literal(Part, "meta"),
	Crop: {Kind: Part, Format: rect, Guard: func(args ...interface{}) bool {
		return len(args) == 4 && positive(args...)
	}},

	AutoJpg: Literal(Filter, "autoJpg()"),
	BackgroundColor: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("background_color", arg(args, 0))
	}},
	Blur: {Kind: Filter, Format: func(args ...interface{}) string {
		radius, sigma := arg(args, 0), arg(args, 1)
		if !Truthy(sigma) {
			sigma = radius
		}
		return filter("blur", radius, sigma)
	}},
	Brightness: FilterFunc("brightness"),
	Contrast:   FilterFunc("contrast"),
	Convolution: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("convolution",
			FormatList(arg(args, 0), ";"), arg(args, 1), argOr(args, 2, false))
	}},
	Equalize:     Literal(Filter, "equalize()"),
	ExtractFocal: Literal(Filter, "extract_focal()"),
	Fill: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("fill", arg(args, 0), argOr(args, 1, false))
	}},
	Focal: {Kind: Filter, Format: func(args ...interface{}) string {
		return "focal(" + rect(args...) + ")"
	}},
	Format:     FilterFunc("format"),
	Grayscale:  Literal(Filter, "grayscale()"),
	MaxBytes:   FilterFunc("max_bytes"),
	NoUpscale:  Literal(Filter, "no_upscale()"),
	Noise:      FilterFunc("noise"),
	Proportion: FilterFunc("proportion"),
	Quality:    FilterFunc("quality"),
	RGB: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("rgb", arg(args, 0), arg(args, 1), arg(args, 2))
	}},
	Rotate: FilterFunc("rotate"),
	RoundCorner: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("round_corner",
			FormatList(arg(args, 0), "|"), arg(args, 1), arg(args, 2), arg(args, 3),
			argOr(args, 4, false))
	}},
	Sharpen: {Kind: Filter, Format: func(args ...interface{}) string {
		return filter("sharpen", arg(args, 0), arg(args, 1), argOr(args, 2, false))
	}},
	StripExif: Literal(Filter, "strip_exif()"),
}

// Accept reports whether args pass the entry guard
func (e Entry) Accept(args ...interface{}) bool {
	return e.Guard == nil || e.Guard(args...)
}

// Lookup entry by name
func (c Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c[name]
	if !ok || e.Format == nil {
		return Entry{}, false
	}
	return e, true
}

// With returns a copy of the catalog with entry registered under name
func (c Catalog) With(name string, entry Entry) Catalog {
	res := make(Catalog, len(c)+1)
	for k, v := range c {
		res[k] = v
	}
	res[name] = entry
	return res
}

// Names sorted operation names of the catalog
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
