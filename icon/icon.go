// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
	"golang.org/x/exp/slices"
)

var variants = [...]string{"plain", "emoji", "nerd", "kaomoji", "squares"}

// AvailableVariants lists accepted icons.variant values.
func AvailableVariants() []string {
	return variants[:]
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	v := slices.Index(variants[:], viper.GetString(key.IconsVariant))
	if v < 0 {
		return ""
	}
	return symbols[i][v]
}
