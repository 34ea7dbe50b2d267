//go:build darwin

package hotkey

import "golang.design/x/hotkey"

func platformModifier(m Modifier) hotkey.Modifier {
	switch m {
	case ModShift:
		return hotkey.ModShift
	case ModAlt:
		return hotkey.ModOption
	case ModSuper:
		return hotkey.ModCmd
	}
	return hotkey.ModCtrl
}
