package device

var kindleDevices = []definition{
	{"kindle_paperwhite_11", "Kindle Paperwhite 11th Gen", 1236, 1648, 300, 6.8, templateEInkBW, `6.8" e-ink, 300 ppi`},
	{"kindle_paperwhite_11_se", "Kindle Paperwhite SE 11th Gen", 1236, 1648, 300, 6.8, templateEInkBW, `6.8" e-ink, 300 ppi, Qi`},
	{"kindle_paperwhite", "Kindle Paperwhite (older)", 1072, 1448, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"kindle_paperwhite_12", "Kindle Paperwhite 12th Gen", 1264, 1680, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi`},
	{"kindle_paperwhite_12_se", "Kindle Paperwhite SE 12th Gen", 1264, 1680, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi, Qi`},
	{"kindle_scribe", "Kindle Scribe", 1860, 2480, 300, 10.2, templateEInkBW, `10.2" e-ink, 300 ppi`},
	{"kindle_scribe_2024", "Kindle Scribe 2024", 1860, 2480, 300, 10.2, templateEInkBW, `10.2" e-ink, 300 ppi, stylus`},
	{"kindle_oasis", "Kindle Oasis", 1264, 1680, 300, 7.0, templateEInkBW, `7" e-ink, 300 ppi`},
	{"kindle_11_2022", "Kindle 11th Gen 2022", 1072, 1448, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi, USB-C`},
	{"kindle_11_2024", "Kindle 11th Gen 2024", 1072, 1448, 300, 6.0, templateEInkBW, `6" e-ink, 300 ppi`},
	{"kindle_colorsoft_se", "Kindle Colorsoft SE", 1264, 1680, 300, 7.0, templateEInkColor, `7" color e-ink, 300 ppi`},
}
