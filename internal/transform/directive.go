package transform

import (
	"net/url"
	"strings"
)

const (
	// FallbackWatermarkText is embedded when the watermark is enabled but the
	// configured text is empty or whitespace.
	FallbackWatermarkText = "Default Text"

	// defaultToken keeps the directive path non-empty when no option is set.
	defaultToken = "f_png"
)

var colorTokens = map[ColorFilter]string{
	ColorGrayscale:  "e_grayscale",
	ColorSepia:      "e_sepia",
	ColorCartoonify: "e_cartoonify",
}

// Compile maps options to the ordered list of directive tokens understood by
// the rendering service. The order is fixed because the grammar is positional:
// color first, then the watermark overlay, then the shape crop.
func Compile(opts Options, watermarkText string) []string {
	tokens := make([]string, 0, 3)

	if tok, ok := colorTokens[opts.Color]; ok {
		tokens = append(tokens, tok)
	}

	if opts.Watermark {
		text := watermarkText
		if strings.TrimSpace(text) == "" {
			text = FallbackWatermarkText
		}
		tokens = append(tokens, "l_text:Arial_24:"+EncodeComponent(text)+",co_white,g_south_east,x_10,y_10")
	}

	if opts.Shape == ShapeCircle {
		tokens = append(tokens, "r_max")
	}

	return tokens
}

// CompilePath joins the compiled tokens with "/". With no options set the path
// degrades to a bare PNG conversion so it is never empty.
func CompilePath(opts Options, watermarkText string) string {
	tokens := Compile(opts, watermarkText)
	if len(tokens) == 0 {
		return defaultToken
	}
	return strings.Join(tokens, "/")
}

// EncodeComponent percent-encodes s like the JS encodeURIComponent the
// rendering service documents its grammar against: space becomes %20 and comma
// %2C, so a watermark text cannot break token boundaries.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
