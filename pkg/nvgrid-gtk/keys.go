package nvgridgtk

import "github.com/gotk3/gotk3/gdk"

// keyName maps a GDK keyval to the symbol name forwarded to the editor
// process. Printable keys forward as their character; special and
// keypad keys use their GDK names, with the keypad prefix stripped
// later by the adapter. Modifier-only presses map to "" and are not
// forwarded.
func keyName(keyval uint) string {
	switch keyval {
	case gdk.KEY_Return:
		return "Return"
	case gdk.KEY_Escape:
		return "Escape"
	case gdk.KEY_Tab:
		return "Tab"
	case gdk.KEY_BackSpace:
		return "BackSpace"
	case gdk.KEY_Delete:
		return "Delete"
	case gdk.KEY_Insert:
		return "Insert"
	case gdk.KEY_Up:
		return "Up"
	case gdk.KEY_Down:
		return "Down"
	case gdk.KEY_Left:
		return "Left"
	case gdk.KEY_Right:
		return "Right"
	case gdk.KEY_Home:
		return "Home"
	case gdk.KEY_End:
		return "End"
	case gdk.KEY_Page_Up:
		return "Page_Up"
	case gdk.KEY_Page_Down:
		return "Page_Down"
	case gdk.KEY_F1:
		return "F1"
	case gdk.KEY_F2:
		return "F2"
	case gdk.KEY_F3:
		return "F3"
	case gdk.KEY_F4:
		return "F4"
	case gdk.KEY_F5:
		return "F5"
	case gdk.KEY_F6:
		return "F6"
	case gdk.KEY_F7:
		return "F7"
	case gdk.KEY_F8:
		return "F8"
	case gdk.KEY_F9:
		return "F9"
	case gdk.KEY_F10:
		return "F10"
	case gdk.KEY_F11:
		return "F11"
	case gdk.KEY_F12:
		return "F12"

	// Keypad keys report with their KP_ names; the adapter strips the
	// prefix so they forward as their base digit or operator.
	case gdk.KEY_KP_0:
		return "KP_0"
	case gdk.KEY_KP_1:
		return "KP_1"
	case gdk.KEY_KP_2:
		return "KP_2"
	case gdk.KEY_KP_3:
		return "KP_3"
	case gdk.KEY_KP_4:
		return "KP_4"
	case gdk.KEY_KP_5:
		return "KP_5"
	case gdk.KEY_KP_6:
		return "KP_6"
	case gdk.KEY_KP_7:
		return "KP_7"
	case gdk.KEY_KP_8:
		return "KP_8"
	case gdk.KEY_KP_9:
		return "KP_9"
	case gdk.KEY_KP_Add:
		return "KP_Add"
	case gdk.KEY_KP_Subtract:
		return "KP_Subtract"
	case gdk.KEY_KP_Multiply:
		return "KP_Multiply"
	case gdk.KEY_KP_Divide:
		return "KP_Divide"
	case gdk.KEY_KP_Decimal:
		return "KP_Decimal"
	case gdk.KEY_KP_Enter:
		return "KP_Enter"
	case gdk.KEY_KP_Up:
		return "KP_Up"
	case gdk.KEY_KP_Down:
		return "KP_Down"
	case gdk.KEY_KP_Left:
		return "KP_Left"
	case gdk.KEY_KP_Right:
		return "KP_Right"
	case gdk.KEY_KP_Home:
		return "KP_Home"
	case gdk.KEY_KP_End:
		return "KP_End"
	case gdk.KEY_KP_Page_Up:
		return "KP_Page_Up"
	case gdk.KEY_KP_Page_Down:
		return "KP_Page_Down"
	case gdk.KEY_KP_Insert:
		return "KP_Insert"
	case gdk.KEY_KP_Delete:
		return "KP_Delete"

	case gdk.KEY_Shift_L, gdk.KEY_Shift_R,
		gdk.KEY_Control_L, gdk.KEY_Control_R,
		gdk.KEY_Alt_L, gdk.KEY_Alt_R,
		gdk.KEY_Meta_L, gdk.KEY_Meta_R,
		gdk.KEY_Super_L, gdk.KEY_Super_R,
		gdk.KEY_Caps_Lock, gdk.KEY_Num_Lock, gdk.KEY_Scroll_Lock:
		return ""
	}

	if r := gdk.KeyvalToUnicode(keyval); r != 0 {
		return string(r)
	}
	return ""
}
