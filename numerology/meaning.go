package numerology

var meanings = map[int]string{
	1:  "Leadership, independence, new beginnings",
	2:  "Partnership, diplomacy, sensitivity",
	3:  "Expression, creativity, joy",
	4:  "Structure, work, stability",
	5:  "Change, freedom, adventure",
	6:  "Care, responsibility, home",
	7:  "Reflection, analysis, spirituality",
	8:  "Power, ambition, material mastery",
	9:  "Completion, compassion, release",
	11: "Master intuitive: inspiration and illumination",
	22: "Master builder: vision made concrete",
	33: "Master teacher: service and healing",
}

// Meaning returns keywords for a profile number, or "" for any other value.
func Meaning(n int) string {
	return meanings[n]
}
