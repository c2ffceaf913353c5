package reference

import "net/url"

var departmentSites = map[string]string{
	"PSTAT": "https://www.pstat.ucsb.edu/people",
	"CS":    "https://www.cs.ucsb.edu/people/faculty",
	"MATH":  "https://www.math.ucsb.edu/people/faculty",
}

// aidLinks keeps the order the Aid & Jobs page shows them in.
var aidLinks = []Link{
	{"FAFSA", "https://studentaid.gov/h/apply-for-aid/fafsa"},
	{"UCSB Financial Aid", "https://www.finaid.ucsb.edu/"},
	{"Work-Study (UCSB)", "https://www.finaid.ucsb.edu/types-of-aid/work-study"},
	{"Handshake", "https://ucsb.joinhandshake.com/"},
}

// DepartmentSites returns the faculty pages sorted by department.
func DepartmentSites() []Link {
	return sortedLinks(departmentSites)
}

func DepartmentSite(dept string) (string, bool) {
	u, ok := departmentSites[dept]
	return u, ok
}

func AidLinks() []Link {
	out := make([]Link, len(aidLinks))
	copy(out, aidLinks)
	return out
}

// ProfessorSearchURL builds a web search scoped to RateMyProfessors for
// a professor at UCSB. An empty name yields "".
func ProfessorSearchURL(name string) string {
	if name == "" {
		return ""
	}
	q := url.QueryEscape(name + " site:ratemyprofessors.com UCSB")
	return "https://www.google.com/search?q=" + q
}
