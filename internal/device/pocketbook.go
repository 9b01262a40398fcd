package device

var pocketbookDevices = []definition{
	{"pocketbook_basic_4", "PocketBook Basic 4", 1024, 758, 212, 6.0, templateEInkBW, `6" e-ink, 212 ppi`},
	{"pocketbook_touch_lux_5", "PocketBook Touch Lux 5", 758, 1024, 212, 6.0, templateEInkBW, `6" e-ink, 212 ppi`},
	{"pocketbook_verse", "PocketBook Verse", 758, 1024, 212, 6.0, templateEInkBW, `6" e-ink, 212 ppi`},
	{"pocketbook_verse_pro", "PocketBook Verse Pro", 1072, 1448, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"pocketbook_verse_pro_color", "PocketBook Verse Pro Color", 1072, 1448, 300, 6.0, templateEInkColor, `6" color e-ink, 300 ppi`},
	{"pocketbook_era", "PocketBook Era", 1264, 1680, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi`},
	{"pocketbook_era_color", "PocketBook Era Color", 1264, 1680, 300, 7.0, templateEInkColor, `7" color e-ink, 300 ppi`},
	{"pocketbook_inkpad_lite", "PocketBook InkPad Lite", 825, 1200, 150, 9.7, templateEInkBW, `9.7" e-ink, 150 ppi`},
	{"pocketbook_inkpad_4", "PocketBook InkPad 4", 1404, 1872, 300, 7.8, templateEInkBW, `7.8" e-ink, 300 ppi`},
	{"pocketbook_inkpad_x_pro", "PocketBook InkPad X Pro", 1404, 1872, 227, 10.3, templateEInkBW, `10.3" e-ink, 227 ppi`},
	{"pocketbook_color_633", "PocketBook Color", 1072, 1448, 212, 6.0, templateEInkColor, `6" color e-ink, 212 ppi`},
	{"pocketbook_inkpad_color", "PocketBook InkPad Color", 1404, 1872, 300, 7.8, templateEInkColor, `7.8" color e-ink, 300 ppi`},
	{"pocketbook_inkpad_color_2", "PocketBook InkPad Color 2", 1404, 1872, 300, 7.8, templateEInkColor, `7.8" color e-ink, 300 ppi`},
	{"pocketbook_inkpad_color_3", "PocketBook InkPad Color 3", 1404, 1872, 300, 7.8, templateEInkColor, `7.8" color e-ink, 300 ppi`},
	{"pocketbook_inkpad_eo", "PocketBook InkPad Eo", 1860, 2480, 300, 10.3, templateEInkColor, `10.3" color e-ink, 300 ppi`},
	{"pocketbook_color_note", "PocketBook Color Note", 1404, 1872, 227, 10.3, templateEInkColor, `10.3" color e-ink, 227 ppi`},
}
