package data

// theftAvoidance maps a dexterity score to the percentage contribution
// dexterity makes toward blocking theft attempts. The defender's level
// is added on top before rolling against 100.
var theftAvoidance = []int{
	0,  // 3 and below
	1,  // 4
	2,  // 5
	3,  // 6
	4,  // 7
	5,  // 8
	5,  // 9
	6,  // 10
	6,  // 11
	7,  // 12
	7,  // 13
	8,  // 14
	8,  // 15
	9,  // 16
	9,  // 17
	10, // 18
	15, // 19
	20, // 20
	25, // 21
	30, // 22
	40, // 23
	50, // 24 and above
}

// TheftAvoidance returns the dexterity-derived theft avoidance value
// for the given dexterity score, clamped at the table ends.
func TheftAvoidance(dex int) int {
	idx := dex - 3
	if idx < 0 {
		idx = 0
	}
	if idx >= len(theftAvoidance) {
		idx = len(theftAvoidance) - 1
	}
	return theftAvoidance[idx]
}
