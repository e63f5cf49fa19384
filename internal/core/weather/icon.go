package weather

import (
	"fmt"

	"weatherblock.app/pkg/sanitize"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@%s.png"

// Icon sizes served by the provider
const (
	IconSize2x = "2x"
	IconSize4x = "4x"
)

// ResolveIconURL maps an icon code to its provider-hosted image. The code is
// reduced to plain text and placed into the URL unchanged. Unknown sizes
// fall back to 2x.
func ResolveIconURL(icon, size string) string {
	if size != IconSize2x && size != IconSize4x {
		size = IconSize2x
	}
	return fmt.Sprintf(iconURLFormat, sanitize.Text(icon), size)
}
