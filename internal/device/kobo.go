package device

var koboDevices = []definition{
	{"kobo_nia", "Kobo Nia", 1024, 758, 212, 6.0, templateEInkBW, `6" e-ink, 212 ppi`},
	{"kobo_clara_2e", "Kobo Clara 2E", 1448, 1072, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"kobo_clara_bw", "Kobo Clara BW", 1448, 1072, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"kobo_clara_colour", "Kobo Clara Colour", 1448, 1072, 300, 6.0, templateEInkColor, `6" color e-ink, 300 ppi`},
	{"kobo_libra_2", "Kobo Libra 2", 1680, 1264, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi`},
	{"kobo_libra_colour", "Kobo Libra Colour", 1680, 1264, 300, 7.0, templateEInkColor, `7" color e-ink, 300 ppi`},
	{"kobo_sage", "Kobo Sage", 1920, 1440, 300, 8.0, templateEInkBW, `8" e-ink, 300 ppi`},
	{"kobo_elipsa", "Kobo Elipsa", 1404, 1872, 227, 10.3, templateEInkBW, `10.3" e-ink, 227 ppi`},
	{"kobo_elipsa_2e", "Kobo Elipsa 2E", 1404, 1872, 227, 10.3, templateEInkBW, `10.3" e-ink, 227 ppi, stylus`},
}
