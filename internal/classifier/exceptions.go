// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// defaultExceptions returns the curated identifier overrides: records whose
// category is known ground truth and must short-circuit arbitration.
// The table is data, not logic; deployments can replace it wholesale from
// the config file.
//
//nolint:funlen // flat data table
func defaultExceptions() map[string]string {
	return map[string]string{
		"331": "dessert", "520": "main_dish", "1083": "beverage", "1476": "main_dish", "1576": "main_dish", "1651": "beverage",
		"2019": "beverage", "3496": "beverage", "3731": "main_dish", "6553": "dessert", "6605": "main_dish", "6822": "beverage",
		"6835": "main_dish", "7248": "main_dish", "7731": "main_dish", "8104": "main_dish", "8136": "main_dish", "9218": "main_dish",
		"9230": "beverage", "11833": "main_dish", "11911": "main_dish", "13361": "dessert", "13542": "dessert", "13562": "dessert",
		"16994": "dessert", "17100": "dessert", "18232": "main_dish", "18764": "beverage", "23231": "beverage", "24485": "beverage",
		"24800": "beverage", "24813": "dessert", "25257": "beverage", "25584": "beverage", "26695": "main_dish", "27248": "beverage",
		"27678": "main_dish", "28364": "main_dish", "28473": "dessert", "32207": "dessert", "32456": "dessert", "33114": "main_dish",
		"33647": "main_dish", "34503": "dessert", "35824": "dessert", "36312": "main_dish", "36351": "beverage", "36386": "dessert",
		"37184": "main_dish", "41660": "main_dish", "42068": "dessert", "48266": "main_dish", "50177": "dessert", "50585": "dessert",
		"51413": "main_dish", "54466": "main_dish", "55087": "main_dish", "56018": "main_dish", "56521": "main_dish", "60553": "beverage",
		"62006": "main_dish", "62268": "dessert", "62344": "main_dish", "62385": "main_dish", "62957": "dessert", "63183": "main_dish",
		"64634": "dessert", "65319": "main_dish", "66088": "main_dish", "66219": "main_dish", "66811": "main_dish", "67884": "main_dish",
		"67896": "beverage", "68259": "main_dish", "68275": "main_dish", "68348": "main_dish", "69606": "dessert", "69789": "main_dish",
		"70065": "main_dish", "70254": "main_dish", "70855": "main_dish", "71235": "dessert", "71942": "beverage", "72213": "beverage",
		"74351": "main_dish", "74406": "dessert", "75562": "main_dish", "76648": "dessert", "76680": "main_dish", "76713": "main_dish",
		"76921": "main_dish", "77016": "main_dish", "78432": "main_dish", "78797": "main_dish", "79300": "beverage", "79666": "main_dish",
		"81172": "main_dish", "81378": "main_dish", "82027": "main_dish", "82827": "main_dish", "83588": "main_dish", "84266": "beverage",
		"84828": "main_dish", "86507": "dessert", "87466": "main_dish", "90041": "main_dish", "90329": "main_dish", "91846": "beverage",
		"93610": "main_dish", "94098": "main_dish", "95258": "main_dish", "95855": "dessert", "97326": "main_dish", "97761": "main_dish",
		"98194": "beverage", "99338": "dessert", "99851": "dessert", "100031": "main_dish", "100649": "main_dish", "100674": "main_dish",
		"100767": "main_dish", "100770": "beverage", "102546": "main_dish", "103813": "beverage", "103951": "dessert", "104106": "beverage",
		"104668": "dessert", "104792": "beverage", "105124": "main_dish", "107144": "main_dish", "107456": "main_dish", "107813": "main_dish",
		"107972": "main_dish", "108364": "main_dish", "108562": "main_dish", "109099": "beverage", "109172": "beverage", "109429": "beverage",
		"109588": "beverage", "109713": "main_dish", "110335": "main_dish", "110495": "beverage", "111095": "beverage", "111674": "main_dish",
		"111913": "dessert", "111945": "main_dish", "113761": "main_dish", "113854": "main_dish", "114324": "dessert", "114902": "main_dish",
		"115163": "dessert", "116398": "dessert", "117477": "main_dish", "118193": "main_dish", "119143": "beverage", "120430": "beverage",
		"121155": "dessert", "121210": "main_dish", "121599": "main_dish", "121801": "dessert", "122791": "beverage", "124119": "main_dish",
		"124463": "dessert", "124775": "main_dish", "125389": "main_dish", "125469": "main_dish", "125927": "dessert", "126591": "dessert",
		"126681": "beverage", "126840": "main_dish", "126847": "dessert", "128882": "beverage", "128918": "beverage", "128962": "dessert",
		"129482": "beverage", "129493": "main_dish", "129791": "main_dish", "129955": "main_dish", "130133": "dessert", "130380": "main_dish",
		"130618": "beverage", "131605": "main_dish", "131794": "main_dish", "134245": "main_dish", "137042": "main_dish", "137189": "main_dish",
		"137453": "main_dish", "139356": "main_dish", "140887": "dessert", "141356": "main_dish", "141416": "main_dish", "141971": "main_dish",
		"142045": "beverage", "142299": "main_dish", "142452": "main_dish", "144325": "main_dish", "144474": "dessert", "144561": "dessert",
		"145294": "main_dish", "145822": "main_dish", "147408": "main_dish", "148223": "main_dish", "148312": "main_dish", "148920": "main_dish",
		"149372": "main_dish", "149481": "beverage", "149534": "main_dish", "149565": "beverage", "150115": "main_dish", "151105": "dessert",
		"151409": "beverage", "151530": "beverage", "151799": "main_dish", "152514": "main_dish", "152576": "main_dish", "154388": "main_dish",
		"154994": "main_dish", "155145": "beverage", "155495": "main_dish", "156067": "dessert", "156420": "main_dish", "156596": "beverage",
		"156827": "main_dish", "158153": "main_dish", "158277": "main_dish", "158647": "main_dish", "159626": "main_dish", "159672": "main_dish",
		"160029": "main_dish", "161480": "main_dish", "163772": "main_dish", "166595": "main_dish", "166615": "main_dish", "166811": "dessert",
		"167784": "dessert", "168284": "dessert", "168419": "main_dish", "169524": "main_dish", "170741": "main_dish", "170793": "main_dish",
		"171972": "main_dish", "172350": "main_dish", "172914": "beverage", "173613": "dessert", "176533": "main_dish", "176925": "main_dish",
		"177122": "main_dish", "177133": "main_dish", "177695": "main_dish", "178090": "main_dish", "178386": "main_dish", "178572": "main_dish",
		"179679": "main_dish", "180666": "main_dish", "181691": "beverage", "182197": "main_dish", "182602": "beverage", "184565": "dessert",
		"187024": "main_dish", "187079": "dessert", "187173": "dessert", "189549": "main_dish", "189613": "main_dish", "189695": "main_dish",
		"190760": "dessert", "192190": "main_dish", "192788": "main_dish", "193459": "main_dish", "194655": "dessert", "195087": "beverage",
		"195648": "main_dish", "195937": "main_dish", "196237": "main_dish", "196355": "main_dish", "198221": "main_dish", "198443": "dessert",
		"198783": "beverage", "198883": "main_dish", "199448": "beverage", "199982": "dessert", "200411": "dessert", "200444": "dessert",
		"200481": "beverage", "200753": "beverage", "201751": "main_dish", "202968": "main_dish", "203348": "main_dish", "204246": "beverage",
		"204377": "dessert", "205172": "main_dish", "206195": "main_dish", "206953": "main_dish", "208563": "main_dish", "208986": "main_dish",
		"209202": "main_dish", "210627": "main_dish", "211132": "dessert", "211280": "main_dish", "211306": "dessert", "212024": "main_dish",
		"212262": "dessert", "214408": "main_dish", "215068": "main_dish", "215081": "main_dish", "215090": "main_dish", "215553": "main_dish",
		"218911": "main_dish", "218986": "main_dish", "219160": "main_dish", "219255": "main_dish", "220189": "beverage", "220488": "beverage",
		"220994": "dessert", "221123": "beverage", "221414": "dessert", "223137": "main_dish", "223316": "beverage", "223435": "main_dish",
		"224191": "beverage", "224325": "beverage", "224466": "beverage", "224815": "beverage", "225340": "main_dish", "225763": "main_dish",
		"225820": "beverage", "227569": "main_dish", "228216": "main_dish", "229241": "dessert", "229401": "main_dish", "229969": "main_dish",
		"231055": "beverage", "231267": "dessert", "231385": "main_dish", "1129603": "dessert", "1132780": "main_dish", "4629380": "main_dish",
		"42713473": "main_dish", "44448868": "dessert", "44772139": "main_dish", "53425294": "main_dish", "57178760": "main_dish", "64059321": "dessert",
		"74029908": "dessert", "300213328": "beverage", "328178370": "main_dish", "338227676": "main_dish", "407223421": "dessert", "408201408": "main_dish",
		"419103205": "dessert", "587212879": "main_dish", "601143424": "main_dish", "716175535": "dessert",
	}
}
