package ziwei

// brightnessTable[star][branch], branches in 子..亥 order. The seven-level
// source grading folds 不 into 陷. 天刑 and 咸池 carry no grading and sit
// at a uniform 平.
var brightnessTable = [StarCount][BranchCount]Brightness{
	StarZiwei:     {Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li, Ping, Xian},
	StarTianji:    {Ping, Miao, Wang, De, Li, Xian, Xian, Ping, Miao, Wang, De, Li},
	StarTaiyang:   {Xian, Xian, Ping, Li, De, Wang, Miao, Wang, De, Li, Ping, Xian},
	StarWuqu:      {De, Li, Ping, Xian, Xian, Miao, Wang, De, Li, Ping, Xian, Miao},
	StarTiantong:  {Li, Ping, Xian, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang},
	StarLianzhen:  {Ping, Xian, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De},
	StarTianfu:    uniform(Miao),
	StarTaiyin:    {Miao, Wang, De, Li, Ping, Xian, Xian, Xian, Ping, Li, De, Wang},
	StarTanlang:   {Wang, De, Li, Ping, Xian, Xian, Miao, Wang, De, Li, Ping, Xian},
	StarJumen:     {Xian, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li},
	StarTianxiang: {De, Li, Ping, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang},
	StarTianliang: {Ping, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li},
	StarQisha:     {Miao, Wang, De, Li, Ping, Xian, Xian, Miao, Wang, De, Li, Ping},
	StarPojun:     {De, Li, Ping, Xian, Xian, Miao, Wang, De, Li, Ping, Xian, Miao},

	StarWenchang: {Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li, Ping, Xian},
	StarWenqu:    {Ping, Xian, Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li},
	StarZuofu:    uniform(Miao),
	StarYoubi:    uniform(Miao),
	StarTiankui:  uniform(Ping),
	StarTianyue:  uniform(Ping),
	StarLucun:    uniform(Miao),
	StarTianma:   {Miao, Wang, De, Li, Ping, Xian, Miao, Wang, De, Li, Ping, Xian},

	StarQingyang: {Xian, Xian, Ping, Li, De, Wang, Xian, Xian, Ping, Li, De, Wang},
	StarTuoluo:   {Wang, De, Li, Ping, Xian, Xian, Wang, De, Li, Ping, Xian, Xian},
	StarHuoxing:  {De, Miao, Wang, De, Li, Ping, Xian, Xian, Xian, Ping, Li, De},
	StarLingxing: {Xian, Xian, Xian, Ping, Li, De, Miao, Wang, De, Miao, Wang, De},
	StarDikong:   uniform(Xian),
	StarDijie:    uniform(Xian),
	StarTianxing: uniform(Ping),

	StarHongluan: uniform(Ping),
	StarTianxi:   uniform(Ping),
	StarTianyao:  uniform(Ping),
	StarXianchi:  uniform(Ping),
}

func uniform(b Brightness) [BranchCount]Brightness {
	var row [BranchCount]Brightness
	for i := range row {
		row[i] = b
	}
	return row
}

// BrightnessOf returns the brightness of star at branch.
func BrightnessOf(star StarID, b Branch) Brightness {
	return brightnessTable[star][b]
}
