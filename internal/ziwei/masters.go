package ziwei

// LifeMaster returns 命主 for the Life palace branch.
func LifeMaster(life Branch) StarID { return lifeMasterTable[life] }

// BodyMaster returns 身主 for the year branch.
func BodyMaster(yearBranch Branch) StarID { return bodyMasterTable[yearBranch] }

// Doujun returns 斗君: from 寅 forward to the birth month, then forward by the hour.
func Doujun(lunarMonth int, hour Branch) Branch {
	return BranchYin.Add(lunarMonth - 1 + int(hour))
}
