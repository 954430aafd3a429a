package settings

// DefaultAdminPath is the application-relative location of the back office.
const DefaultAdminPath = "~/backoffice"

var staticReservedPaths = []string{
	"~/app_plugins/",
	"~/install/",
	"~/mini-profiler-resources/",
}

var staticReservedURLs = []string{
	"~/config/splashes/noNodes.aspx",
	"~/.well-known",
}

var defaultImageFileTypes = []string{"jpeg", "jpg", "gif", "bmp", "png", "tiff", "tif"}

var defaultCharReplacements = []CharReplacement{
	{Char: " ", Replacement: "-"},
	{Char: `"`, Replacement: ""},
	{Char: "'", Replacement: ""},
	{Char: "%", Replacement: ""},
	{Char: ".", Replacement: ""},
	{Char: ";", Replacement: ""},
	{Char: "/", Replacement: ""},
	{Char: `\`, Replacement: ""},
	{Char: ":", Replacement: ""},
	{Char: "#", Replacement: ""},
	{Char: "+", Replacement: "plus"},
	{Char: "*", Replacement: "star"},
	{Char: "&", Replacement: ""},
	{Char: "?", Replacement: ""},
	{Char: "æ", Replacement: "ae"},
	{Char: "ø", Replacement: "oe"},
	{Char: "å", Replacement: "aa"},
	{Char: "ä", Replacement: "ae"},
	{Char: "ö", Replacement: "oe"},
	{Char: "ü", Replacement: "ue"},
	{Char: "ß", Replacement: "ss"},
	{Char: "|", Replacement: "-"},
	{Char: "<", Replacement: ""},
	{Char: ">", Replacement: ""},
}

// StaticReservedPaths lists paths the router never treats as content.
func StaticReservedPaths() []string {
	return append([]string(nil), staticReservedPaths...)
}

// StaticReservedURLs lists URLs the router never treats as content.
func StaticReservedURLs() []string {
	return append([]string(nil), staticReservedURLs...)
}

// DefaultImageFileTypes lists the extensions treated as images.
func DefaultImageFileTypes() []string {
	return append([]string(nil), defaultImageFileTypes...)
}

// DefaultImageAutoFillProperties returns the single built-in auto-fill
// mapping for uploaded images.
func DefaultImageAutoFillProperties() []ImageAutoFill {
	return []ImageAutoFill{{
		Alias:          "file",
		WidthField:     "width",
		HeightField:    "height",
		LengthField:    "bytes",
		ExtensionField: "extension",
	}}
}

// DefaultCharReplacements returns the URL segment character table.
func DefaultCharReplacements() []CharReplacement {
	return append([]CharReplacement(nil), defaultCharReplacements...)
}
