package synchro

// angelNumbers maps each recognised angel number to its keyword.
var angelNumbers = map[int]string{
	111:   "manifestation",
	222:   "balance",
	333:   "guidance",
	444:   "protection",
	555:   "change",
	666:   "realignment",
	777:   "luck",
	888:   "abundance",
	999:   "completion",
	1010:  "awakening",
	1111:  "alignment",
	1212:  "trust",
	1221:  "reflection",
	1234:  "progress",
	1313:  "growth",
	1414:  "foundation",
	1515:  "transformation",
	2020:  "clarity",
	2121:  "renewal",
	2222:  "harmony",
	2323:  "expression",
	3333:  "support",
	4321:  "release",
	4444:  "stability",
	5555:  "transition",
	6666:  "grounding",
	7777:  "fortune",
	8888:  "prosperity",
	9999:  "closure",
	12345: "momentum",
}

// mirrorTimes holds HH:MM clock readings whose minutes repeat or reverse the hour.
var mirrorTimes = func() map[string]bool {
	m := make(map[string]bool)
	for h := 0; h < 24; h++ {
		hh := pad2(h)
		m[hh+":"+hh] = true
		if mm := string([]byte{hh[1], hh[0]}); mm < "60" {
			m[hh+":"+mm] = true
		}
	}
	return m
}()

// IsAngel reports whether n is in the angel number table.
func IsAngel(n int) bool {
	_, ok := angelNumbers[n]
	return ok
}

// AngelMeaning returns the keyword for an angel number, or "".
func AngelMeaning(n int) string {
	return angelNumbers[n]
}

// IsMirrorTime reports whether clock ("HH:MM") is a mirror time.
func IsMirrorTime(clock string) bool {
	return mirrorTimes[clock]
}

func pad2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
