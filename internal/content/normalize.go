package content

import "github.com/jadebrew/site-manager/internal/models"

// ToLocalized upgrades an arbitrary persisted value into a LocalizedText,
// falling back to def only where data is absent or unusable.
//
// Three shapes are accepted:
//
//   - A plain string: legacy documents stored bare Chinese strings. If the
//     string still equals the default Chinese text it is unedited default
//     content, so the canonical English translation is recovered. Otherwise
//     the text is unknown legacy content and is duplicated into both slots
//     rather than guessed at.
//   - A {zh, en} object: passed through, except for the signature of an old
//     bad migration that collapsed the translation (en == zh == default zh
//     while the defaults differ), which is healed by restoring the default
//     English text.
//   - Anything else (missing, null, wrong type): the default pair.
//
// The function is idempotent: applying it to its own output is a no-op.
func ToLocalized(raw any, def models.LocalizedText) models.LocalizedText {
	switch v := raw.(type) {
	case string:
		if v == def.ZH {
			return models.LocalizedText{ZH: v, EN: def.EN}
		}
		return models.LocalizedText{ZH: v, EN: v}

	case models.LocalizedText:
		return healCollapsed(v, def)

	case map[string]any:
		zh, zhOK := v["zh"].(string)
		en, enOK := v["en"].(string)
		switch {
		case zhOK && enOK:
			return healCollapsed(models.LocalizedText{ZH: zh, EN: en}, def)
		case zhOK:
			// Half a pair behaves like the legacy bare string.
			return ToLocalized(zh, def)
		case enOK:
			return healCollapsed(models.LocalizedText{ZH: def.ZH, EN: en}, def)
		default:
			return def
		}

	default:
		return def
	}
}

// healCollapsed restores the default translation for pairs where a previous
// migration copied the untouched default Chinese text over the English slot.
func healCollapsed(t, def models.LocalizedText) models.LocalizedText {
	if t.EN == t.ZH && t.ZH == def.ZH && def.ZH != def.EN {
		return models.LocalizedText{ZH: t.ZH, EN: def.EN}
	}
	return t
}
