// Package maskbutton implements a button whose visible surface is a two-color
// linear gradient, either filled into the title or image glyph or with the
// glyph cut out of a filled background.
//
// # Rendering
//
// Each layout pass combines two cached rasters:
//
//   - the gradient layer, built from the resolved start/end colors and the
//     gradient angle;
//   - the stencil, a monochrome rendering of the rounded outline and the
//     title (or, absent a title, the image) for the current state.
//
// The stencil's luminance becomes an alpha mask that is applied to the
// gradient. In reversed mode the stencil's colors are swapped, so the glyph is
// cut out of the gradient instead of filled with it.
//
// # Invalidation
//
// Setters clear exactly the cache slot they affect:
//
//	SetGradientStartColor, SetGradientEndColor, SetGradientAngle,
//	SetInterpolationSpace, SetBackgroundColor, SetTintColor,
//	SetTheme, SetHost                                   -> gradient
//	SetTitle, SetImage, SetFont, SetReversed            -> stencil
//	ForceRedraw                                         -> both
//
// Border width and corner radius are not tracked; call ForceRedraw after
// changing them. Slots are rebuilt lazily by the next Layout.
//
// # Example
//
//	b := maskbutton.New(maskbutton.DefaultOptions())
//	b.SetTitle(maskbutton.StateNormal, "OK")
//	b.SetGradientStartColor(rendering.ColorRed)
//	b.SetGradientEndColor(rendering.ColorBlue)
//	layers := b.Layout(rendering.RectFromLTWH(0, 0, 200, 60))
//	_ = layers.Content // premultiplied RGBA, ready to composite at layers.Alpha
package maskbutton
