package device

var appleDevices = []definition{
	{"ipad_pro_11", `iPad Pro 11"`, 1668, 2388, 264, 11.0, templateColor, `11" retina, 264 ppi`},
	{"ipad_pro_129", `iPad Pro 12.9"`, 2048, 2732, 264, 12.9, templateColor, `12.9" retina, 264 ppi`},
	{"ipad_air", "iPad Air", 1640, 2360, 264, 10.9, templateColor, `10.9" retina, 264 ppi`},
	{"ipad_mini", "iPad Mini", 1488, 2266, 326, 8.3, templateColor, `8.3" retina, 326 ppi`},
	{"ipad_10", "iPad 10th Gen", 1620, 2360, 264, 10.9, templateColor, `10.9" retina, 264 ppi`},
}
