// Package palette deterministically assigns chart colors to labels, so a
// category keeps the same color across renders and views.
package palette

var colors = [...]string{
	"#ff8b5f",
	"#38b6ff",
	"#ffd166",
	"#06d6a0",
	"#8e7dff",
	"#f4a261",
	"#e76f51",
	"#2a9d8f",
	"#c084fc",
	"#3b82f6",
}

// ForLabel returns the palette color for a label. Empty labels get the
// first color.
func ForLabel(label string) string {
	if label == "" {
		return colors[0]
	}
	hash := 0
	for _, r := range label {
		hash = int(r) + ((hash << 5) - hash)
	}
	if hash < 0 {
		hash = -hash
	}
	return colors[hash%len(colors)]
}
