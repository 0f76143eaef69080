package phonemap

// entry pairs one TIMIT phoneme label with its folded CMU-39 equivalent.
// The TIMIT set collapses closures, flaps and several allophonic variants
// onto the smaller CMU set the standard phoneme-recognition literature
// reports against.
type entry struct {
	timit string
	cmu   string
}

// table is the literal TIMIT->CMU mapping, injected as configuration at
// package init rather than built from any external file.
var table = []entry{
	{"iy", "iy"}, {"ih", "ih"}, {"ix", "ih"}, {"eh", "eh"}, {"ae", "ae"},
	{"ax", "ah"}, {"ah", "ah"}, {"ax-h", "ah"}, {"uw", "uw"}, {"ux", "uw"},
	{"uh", "uh"}, {"ao", "aa"}, {"aa", "aa"}, {"ey", "ey"}, {"ay", "ay"},
	{"oy", "oy"}, {"aw", "aw"}, {"ow", "ow"}, {"er", "er"}, {"axr", "er"},
	{"l", "l"}, {"el", "l"}, {"r", "r"}, {"w", "w"}, {"y", "y"},
	{"m", "m"}, {"em", "m"}, {"n", "n"}, {"en", "n"}, {"nx", "n"},
	{"ng", "ng"}, {"eng", "ng"}, {"v", "v"}, {"f", "f"}, {"dh", "dh"},
	{"th", "th"}, {"z", "z"}, {"zh", "sh"}, {"s", "s"}, {"sh", "sh"},
	{"hh", "hh"}, {"hv", "hh"}, {"jh", "jh"}, {"ch", "ch"},
	{"b", "b"}, {"d", "d"}, {"g", "g"}, {"p", "p"}, {"t", "t"}, {"k", "k"},
	{"dx", "d"}, {"q", ""},
	{"bcl", "sil"}, {"dcl", "sil"}, {"gcl", "sil"}, {"pcl", "sil"},
	{"tcl", "sil"}, {"kcl", "sil"}, {"pau", "sil"}, {"epi", "sil"},
	{"h#", "sil"},
}

// timitToCMU and cmuToTIMIT are built once at init for O(1) lookup; the
// literal slice above stays the single source of truth.
var timitToCMU = make(map[string]string, len(table))
var cmuToTIMIT = make(map[string]string, len(table))

func init() {
	for _, e := range table {
		timitToCMU[e.timit] = e.cmu
		if _, exists := cmuToTIMIT[e.cmu]; !exists {
			cmuToTIMIT[e.cmu] = e.timit
		}
	}
}

// ToCMU folds a TIMIT phoneme label onto its CMU-39 equivalent. The empty
// string and ok=false mean the label is not in the table.
func ToCMU(timit string) (cmu string, ok bool) {
	cmu, ok = timitToCMU[timit]
	return cmu, ok
}

// ToTIMIT returns one TIMIT label folding onto the given CMU phoneme
// (the first one encountered while building the table, for CMU classes
// several TIMIT labels collapse onto).
func ToTIMIT(cmu string) (timit string, ok bool) {
	timit, ok = cmuToTIMIT[cmu]
	return timit, ok
}
