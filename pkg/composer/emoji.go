package composer

import "strings"

// Slack wants alias names ("palm_tree"), not raw characters. The alias
// table below covers every emoji used by the pools; stripVariation
// removes the variation selectors some sources attach so lookups stay
// exact.
var emojiAliases = map[string]string{
	"🏖": "beach_with_umbrella",
	"🌴": "palm_tree",
	"🎉": "tada",
	"🌺": "hibiscus",
	"🌸": "cherry_blossom",
	"✈":  "airplane",
	"🚅": "bullettrain_front",
	"🌍": "earth_africa",
	"🧳": "luggage",
	"🗺": "world_map",
	"🧠": "brain",
	"🎧": "headphones",
	"💫": "dizzy",
	"✨":  "sparkles",
	"🔕": "no_bell",
	"🎨": "art",
	"🖌": "lower_left_paintbrush",
	"📐": "triangular_ruler",
	"🌈": "rainbow",
	"💡": "bulb",
	"💻": "computer",
	"⌨":  "keyboard",
	"🚀": "rocket",
	"🐛": "bug",
	"☕":  "coffee",
	"🗣": "speaking_head_in_silhouette",
	"👥": "busts_in_silhouette",
	"🎯": "dart",
	"🎪": "circus_tent",
	"📅": "calendar",
	"🙌": "raised_hands",
	"☀":  "sunny",
	"😄": "smile",
	"🌞": "sun_with_face",
	"🍀": "four_leaf_clover",
}

const fallbackAlias = "computer"

func init() {
	// Literal emoji in the table above may carry a variation selector
	// depending on how the editor saved them. Normalize the keys once
	// so lookups only ever deal with stripped forms.
	for k, v := range emojiAliases {
		stripped := stripVariation(k)
		if stripped != k {
			delete(emojiAliases, k)
			emojiAliases[stripped] = v
		}
	}
}

// stripVariation removes variation selector codepoints (U+FE0E text,
// U+FE0F emoji) so "✈️" and "✈" normalize to the same key.
func stripVariation(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\ufe0e' || r == '\ufe0f' {
			return -1
		}
		return r
	}, s)
}

// aliasFor maps a raw emoji character to its Slack alias name, without
// colons. Unknown characters fall back to a neutral alias rather than
// producing an invalid status.
func aliasFor(raw string) string {
	if alias, ok := emojiAliases[stripVariation(raw)]; ok {
		return alias
	}
	return fallbackAlias
}
