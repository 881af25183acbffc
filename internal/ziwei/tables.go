package ziwei

// Fixed traditional lookup tables. Values are transcribed, not derived.

type starOffset struct {
	star   StarID
	offset int
}

// ziweiSeries places the Ziwei group relative to Ziwei.
var ziweiSeries = [...]starOffset{
	{StarZiwei, 0},
	{StarTianji, -1},
	{StarTaiyang, -3},
	{StarWuqu, -4},
	{StarTiantong, -5},
	{StarLianzhen, -8},
}

// tianfuSeries places the Tianfu group relative to Tianfu.
var tianfuSeries = [...]starOffset{
	{StarTianfu, 0},
	{StarTaiyin, 1},
	{StarTanlang, 2},
	{StarJumen, 3},
	{StarTianxiang, 4},
	{StarTianliang, 5},
	{StarQisha, 6},
	{StarPojun, 10},
}

// ziweiTable[bureau-2][lunarDay-1] is the branch of the Ziwei star.
var ziweiTable = [5][30]Branch{
	// 水二局
	{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3},
	// 木三局
	{4, 1, 1, 5, 2, 2, 6, 3, 3, 7, 4, 4, 8, 5, 5, 9, 6, 6, 10, 7, 7, 11, 8, 8, 0, 9, 9, 1, 10, 10},
	// 金四局
	{11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1},
	// 土五局
	{6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8},
	// 火六局
	{2, 3, 3, 4, 4, 5, 10, 10, 6, 6, 7, 7, 1, 1, 8, 8, 9, 9, 5, 5, 10, 10, 11, 11, 3, 3, 0, 0, 1, 1},
}

// bureauTable[yearStem%5][lifeBranch/2]. Rows: 甲己 乙庚 丙辛 丁壬 戊癸.
// Columns: 子丑 寅卯 辰巳 午未 申酉 戌亥.
var bureauTable = [5][6]Bureau{
	{Water2, Fire6, Wood3, Earth5, Metal4, Fire6},
	{Fire6, Earth5, Metal4, Wood3, Water2, Earth5},
	{Earth5, Metal4, Water2, Fire6, Wood3, Metal4},
	{Metal4, Wood3, Fire6, Water2, Earth5, Wood3},
	{Wood3, Water2, Earth5, Fire6, Metal4, Water2},
}

// tigerStart gives the stem of the 寅 palace for each year stem (五虎遁).
var tigerStart = [StemCount]Stem{
	StemBing, StemWu, StemGeng, StemRen, StemJia,
	StemBing, StemWu, StemGeng, StemRen, StemJia,
}

// monthOrder is the ring in lunar-month order, 寅 first.
var monthOrder = [BranchCount]Branch{
	BranchYin, BranchMao, BranchChen, BranchSi, BranchWu, BranchWei,
	BranchShen, BranchYou, BranchXu, BranchHai, BranchZi, BranchChou,
}

// kuiYueTable[yearStem] is {天魁, 天钺}.
var kuiYueTable = [StemCount][2]Branch{
	{BranchChou, BranchWei}, // 甲
	{BranchZi, BranchShen},  // 乙
	{BranchHai, BranchYou},  // 丙
	{BranchHai, BranchYou},  // 丁
	{BranchChou, BranchWei}, // 戊
	{BranchZi, BranchShen},  // 己
	{BranchChou, BranchWei}, // 庚
	{BranchWu, BranchYin},   // 辛
	{BranchMao, BranchSi},   // 壬
	{BranchMao, BranchSi},   // 癸
}

// lucunTable[yearStem] is the branch of 禄存.
var lucunTable = [StemCount]Branch{
	BranchYin, BranchMao, BranchSi, BranchWu, BranchSi,
	BranchWu, BranchShen, BranchYou, BranchHai, BranchZi,
}

// Triad-keyed tables are indexed by yearBranch%4:
// 0 申子辰, 1 巳酉丑, 2 寅午戌, 3 亥卯未.

var tianmaTable = [4]Branch{BranchYin, BranchHai, BranchShen, BranchSi}

var huoxingBase = [4]Branch{BranchYin, BranchMao, BranchChou, BranchYou}

var xianchiTable = [4]Branch{BranchYou, BranchWu, BranchMao, BranchZi}

var minorLimitStart = [4]Branch{BranchXu, BranchWei, BranchChen, BranchChou}

// sihuaTable[stem] lists the stars turned 禄 权 科 忌.
var sihuaTable = [StemCount][4]StarID{
	{StarLianzhen, StarPojun, StarWuqu, StarTaiyang},       // 甲
	{StarTianji, StarTianliang, StarZiwei, StarTaiyin},     // 乙
	{StarTiantong, StarTianji, StarWenchang, StarLianzhen}, // 丙
	{StarTaiyin, StarTiantong, StarTianji, StarJumen},      // 丁
	{StarTanlang, StarTaiyin, StarYoubi, StarTianji},       // 戊
	{StarWuqu, StarTanlang, StarTianliang, StarWenqu},      // 己
	{StarTaiyang, StarWuqu, StarTaiyin, StarTiantong},      // 庚
	{StarJumen, StarTaiyang, StarWenqu, StarWenchang},      // 辛
	{StarTianliang, StarZiwei, StarZuofu, StarWuqu},        // 壬
	{StarPojun, StarTiantong, StarYoubi, StarTianliang},    // 癸
}

// lifeMasterTable[lifeBranch] is 命主.
var lifeMasterTable = [BranchCount]StarID{
	StarTanlang, StarJumen, StarLucun, StarWenqu, StarLianzhen, StarWuqu,
	StarPojun, StarWuqu, StarLianzhen, StarWenqu, StarLucun, StarJumen,
}

// bodyMasterTable[yearBranch] is 身主.
var bodyMasterTable = [BranchCount]StarID{
	StarHuoxing, StarTianxiang, StarTianliang, StarTiantong, StarWenchang, StarTianji,
	StarLingxing, StarTianxiang, StarTianliang, StarTiantong, StarWenchang, StarTianji,
}
