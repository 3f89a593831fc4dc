package thumbor

import "github.com/cshum/thumbor/thumborpath"

// Flip resize flip flag
type Flip int

const (
	// FlipVertical negates the width of resize
	FlipVertical Flip = iota + 1
	// FlipHorizontal negates the height of resize
	FlipHorizontal
)

// HorizontalAlign horizontal alignment
type HorizontalAlign string

// VerticalAlign vertical alignment
type VerticalAlign string

// ImageFormat output image format
type ImageFormat string

const (
	HAlignLeft   HorizontalAlign = "left"
	HAlignCenter HorizontalAlign = "center"
	HAlignRight  HorizontalAlign = "right"

	VAlignTop    VerticalAlign = "top"
	VAlignMiddle VerticalAlign = "middle"
	VAlignBottom VerticalAlign = "bottom"

	FormatWebP ImageFormat = "webp"
	FormatJPEG ImageFormat = "jpeg"
	FormatGIF  ImageFormat = "gif"
	FormatPNG  ImageFormat = "png"
)

// Resize the image to the specified dimensions. Overrides any previous call
// to FitIn or Resize.
//
// Use 0 for proportional resizing, e.g. for a 640 x 480 image Resize(320, 0)
// yields a 320 x 240 thumbnail. Use Apply(thumborpath.Resize, 320, "orig")
// to keep an original dimension.
func (b Builder) Resize(width, height int, flips ...Flip) Builder {
	var flipV, flipH bool
	for _, f := range flips {
		switch f {
		case FlipVertical:
			flipV = true
		case FlipHorizontal:
			flipH = true
		}
	}
	return b.Apply(thumborpath.Resize, width, height, flipV, flipH)
}

// FitIn resizes the image to fit in a box of the specified dimensions.
// Overrides any previous call to FitIn or Resize.
func (b Builder) FitIn(width, height int) Builder {
	return b.Apply(thumborpath.FitIn, width, height)
}

// SmartCrop enables smart cropping
func (b Builder) SmartCrop() Builder {
	return b.Apply(thumborpath.SmartCrop)
}

// HAlign horizontal alignment used if width is altered due to cropping
func (b Builder) HAlign(align HorizontalAlign) Builder {
	return b.Apply(thumborpath.HAlign, string(align))
}

// VAlign vertical alignment used if height is altered due to cropping
func (b Builder) VAlign(align VerticalAlign) Builder {
	return b.Apply(thumborpath.VAlign, string(align))
}

// MetaDataOnly returns JSON metadata instead of the thumbnailed image
func (b Builder) MetaDataOnly() Builder {
	return b.Apply(thumborpath.MetaDataOnly)
}

// Crop manually specifies the crop window.
// Ignored unless all coordinates are greater than zero
func (b Builder) Crop(left, top, right, bottom int) Builder {
	return b.Apply(thumborpath.Crop, left, top, right, bottom)
}

// AutoJpg automatically converts png to jpg
func (b Builder) AutoJpg() Builder {
	return b.Apply(thumborpath.AutoJpg)
}

// BackgroundColor sets the background layer to the specified color,
// useful when converting transparent images to JPEG
func (b Builder) BackgroundColor(color string) Builder {
	return b.Apply(thumborpath.BackgroundColor, color)
}

// Blur applies a gaussian blur. sigma 0 defaults to radius
func (b Builder) Blur(radius, sigma float64) Builder {
	return b.Apply(thumborpath.Blur, radius, sigma)
}

// Brightness changes the brightness by amount in percent, -100 to 100
func (b Builder) Brightness(amount int) Builder {
	return b.Apply(thumborpath.Brightness, amount)
}

// Contrast changes the contrast by amount in percent, -100 to 100
func (b Builder) Contrast(amount int) Builder {
	return b.Apply(thumborpath.Contrast, amount)
}

// Convolution runs a convolution matrix with columns on the image
func (b Builder) Convolution(items []float64, columns int, normalize bool) Builder {
	return b.Apply(thumborpath.Convolution, items, columns, normalize)
}

func (b Builder) Equalize() Builder {
	return b.Apply(thumborpath.Equalize)
}

// ExtractFocal uses focal points of the original image when cropping
func (b Builder) ExtractFocal() Builder {
	return b.Apply(thumborpath.ExtractFocal)
}

// Fill fills the missing parts with color, usually combined with FitIn
func (b Builder) Fill(color string, fillTransparent bool) Builder {
	return b.Apply(thumborpath.Fill, color, fillTransparent)
}

// Focal adds a focal point used by later transforms
func (b Builder) Focal(left, top, right, bottom int) Builder {
	return b.Apply(thumborpath.Focal, left, top, right, bottom)
}

func (b Builder) Format(format ImageFormat) Builder {
	return b.Apply(thumborpath.Format, string(format))
}

func (b Builder) Grayscale() Builder {
	return b.Apply(thumborpath.Grayscale)
}

// MaxBytes degrades quality until the image is under max bytes
func (b Builder) MaxBytes(max int) Builder {
	return b.Apply(thumborpath.MaxBytes, max)
}

// NoUpscale never upscales the image beyond its original size
func (b Builder) NoUpscale() Builder {
	return b.Apply(thumborpath.NoUpscale)
}

// Noise adds amount percent of noise, 0 to 100
func (b Builder) Noise(amount int) Builder {
	return b.Apply(thumborpath.Noise, amount)
}

// Proportion applies proportion 0 to 1 to the resize dimensions
func (b Builder) Proportion(amount float64) Builder {
	return b.Apply(thumborpath.Proportion, amount)
}

// Quality JPEG quality in percent, 0 to 100
func (b Builder) Quality(amount int) Builder {
	return b.Apply(thumborpath.Quality, amount)
}

// RGB changes the amount of color in each channel, -100 to 100
func (b Builder) RGB(red, green, blue int) Builder {
	return b.Apply(thumborpath.RGB, red, green, blue)
}

// Rotate by angle, angles of 360 and above wrap around
func (b Builder) Rotate(angle int) Builder {
	return b.Apply(thumborpath.Rotate, angle)
}

// RoundCorner rounds corners with radius, or radius and ellipse when two radii are given
func (b Builder) RoundCorner(radii []int, red, green, blue int, transparent bool) Builder {
	return b.Apply(thumborpath.RoundCorner, radii, red, green, blue, transparent)
}

// Sharpen enhances apparent sharpness
func (b Builder) Sharpen(amount, radius float64, luminanceOnly bool) Builder {
	return b.Apply(thumborpath.Sharpen, amount, radius, luminanceOnly)
}

// StripExif removes Exif information of the resulting image
func (b Builder) StripExif() Builder {
	return b.Apply(thumborpath.StripExif)
}
