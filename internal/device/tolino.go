package device

var tolinoDevices = []definition{
	{"tolino_page_2", "Tolino Page 2", 1072, 1448, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"tolino_vision_6", "Tolino Vision 6", 1264, 1680, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi`},
	{"tolino_epos_3", "Tolino Epos 3", 1404, 1872, 227, 8.0, templateEInkBW, `8" e-ink, 227 ppi`},
}
