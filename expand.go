package geocanon

import (
	"regexp"
	"strings"
)

// suffixBlacklist holds barenames that must never be emitted by the
// suffix-stripping rules (rules 2 and 4), ported from alt_city_names.py's
// _BLACKLIST and pygeons.py's csc-clean blacklist.
var suffixBlacklist = map[string]bool{
	"lake": true, "lakes": true, "village": true, "pines": true,
	"reserve": true, "the park": true, "city": true, "come": true,
}

var usCaAu = map[string]bool{"US": true, "CA": true, "AU": true}
var onByCountries = map[string]bool{"US": true, "GB": true, "IE": true, "AU": true, "NZ": true, "ZA": true}

var townshipSuffixes = []string{"Township", "Twp", "City", "Village"}

var bracketSuffixRe = regexp.MustCompile(`^(.+?)\s*\(.+\)$`)
var onByRe = regexp.MustCompile(`(?i)^(.+?)[\s-](on|by)[\s-](the[\s-])?.+$`)
var oApostropheRe = regexp.MustCompile(`(?i)\bO'\s?(\S)`)

// ExpandNames returns the raw (not yet normalized) set of additional
// variant names by which name should be indexed, given the thirteen rules
// of the name expander (§4.B core rules 1-7, SPEC_FULL additions 8-13).
// clash reports whether barename is already claimed by another city in
// the same (countryCode, admin1) — required for rule 4's build-time
// clash check.
func ExpandNames(countryCode, admin1, name string, clash func(barename string) bool) []string {
	var out []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v != "" && v != name {
			out = append(out, v)
		}
	}

	// Rule 1: Saint/St, first token only.
	out = append(out, expandFirstToken(name, "Saint", "St")...)
	// Rule 8: Mount/Mt, same shape as rule 1.
	out = append(out, expandFirstToken(name, "Mount", "Mt")...)

	// Rule 2: suffix stripping for US/CA/AU populated places.
	if usCaAu[countryCode] {
		if bare, stripped, ok := stripTownshipSuffix(name); ok {
			if !suffixBlacklist[strings.ToLower(bare)] {
				add(bare)
				if stripped == "City" {
					add(bare + " City")
				}
			}
		}
	}

	// Rule 3: bracketed suffix.
	if m := bracketSuffixRe.FindStringSubmatch(name); m != nil {
		add(m[1])
	}

	// Rule 4: "X on Y" / "X by (the) Y" barenames, with clash check.
	if onByCountries[countryCode] {
		if m := onByRe.FindStringSubmatch(name); m != nil {
			bare := strings.TrimSpace(m[1])
			lower := strings.ToLower(bare)
			if !suffixBlacklist[lower] && !strings.HasSuffix(lower, "park") {
				if clash == nil || !clash(bare) {
					add(bare)
				}
			}
		}
	}

	// Rule 5: Mc/O' space cleanup, token-initial only.
	if v, ok := stripMcSpace(name); ok {
		add(v)
	}
	if v, ok := stripOSpace(name); ok {
		add(v)
	}

	// Rule 6: apostrophe variants for "X O' Y".
	out = append(out, expandOApostrophe(name)...)

	// Rule 7: "-on-the-"/"-by-the-" casing variants.
	out = append(out, expandOnByCasing(name)...)

	// Rule 9: GB alternative names.
	if countryCode == "GB" {
		out = append(out, locale.gbAliases[name]...)
	}

	// Rule 10: IE county names.
	if countryCode == "IE" {
		out = append(out, expandIECounty(name)...)
	}

	// Rule 11: JP administrative suffix stripping.
	if countryCode == "JP" {
		out = append(out, expandJPSuffixes(name)...)
	}

	// Rule 12: RU oblast/kray unconjugation.
	if countryCode == "RU" {
		out = append(out, expandRUAdmin(name)...)
	}

	// Rule 13: MX colonia/delegación/ciudad abbreviations.
	if countryCode == "MX" {
		out = append(out, expandMXAbbrevs(name)...)
	}

	variants := out
	out = nil
	for _, v := range variants {
		add(v)
	}
	return dedupSorted(out)
}

func expandFirstToken(name, long, short string) []string {
	fields := strings.SplitN(name, " ", 2)
	if len(fields) != 2 {
		return nil
	}
	head, rest := fields[0], fields[1]
	switch {
	case strings.EqualFold(head, long):
		return []string{short + " " + rest}
	case strings.EqualFold(head, short):
		return []string{long + " " + rest}
	}
	return nil
}

func stripTownshipSuffix(name string) (bare string, suffix string, ok bool) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return "", "", false
	}
	last := fields[len(fields)-1]
	for _, s := range townshipSuffixes {
		if strings.EqualFold(last, s) {
			bare = strings.TrimSpace(strings.Join(fields[:len(fields)-1], " "))
			return bare, s, true
		}
	}
	return "", "", false
}

func stripMcSpace(name string) (string, bool) {
	fields := strings.SplitN(name, " ", 2)
	if len(fields) != 2 {
		return "", false
	}
	if strings.EqualFold(fields[0], "Mc") {
		return "Mc" + fields[1], true
	}
	return "", false
}

func stripOSpace(name string) (string, bool) {
	fields := strings.SplitN(name, " ", 2)
	if len(fields) != 2 {
		return "", false
	}
	if strings.EqualFold(fields[0], "O") {
		return "O'" + fields[1], true
	}
	return "", false
}

// expandOApostrophe emits "X O Y" and "X Of Y" for names containing an
// "O'" token, e.g. "Land O' Lakes" -> "Land O Lakes", "Land Of Lakes".
func expandOApostrophe(name string) []string {
	if !oApostropheRe.MatchString(name) {
		return nil
	}
	var out []string
	out = append(out, oApostropheRe.ReplaceAllString(name, "O $1"))
	out = append(out, oApostropheRe.ReplaceAllString(name, "Of $1"))
	return out
}

// expandOnByCasing emits both the fully hyphenated lowercase form and a
// space-separated mixed-case form of an on/by name (rule 7).
func expandOnByCasing(name string) []string {
	if !onByRe.MatchString(name) {
		return nil
	}
	var out []string
	hyphenated := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	out = append(out, hyphenated)
	spaced := strings.ReplaceAll(name, "-", " ")
	out = append(out, spaced)
	return out
}

var ieCountyRe = regexp.MustCompile(`(?i)^(County|Co)[\s.]+(\S.*)$`)

func expandIECounty(name string) []string {
	var out []string
	if m := ieCountyRe.FindStringSubmatch(name); m != nil {
		rest := m[2]
		if strings.EqualFold(m[1], "County") {
			out = append(out, "Co "+rest)
		} else {
			out = append(out, "County "+rest)
		}
	}
	if english, ok := locale.ieExonyms[name]; ok {
		out = append(out, english)
	}
	return out
}

var jpRomanSuffixes = []string{"-fu", "-ken", "-shi", "-ku"}

func expandJPSuffixes(name string) []string {
	var out []string
	for _, suf := range jpRomanSuffixes {
		if strings.HasSuffix(strings.ToLower(name), suf) {
			out = append(out, name[:len(name)-len(suf)])
		}
	}
	if strings.HasSuffix(name, "市") {
		out = append(out, strings.TrimSuffix(name, "市"))
	}
	if strings.HasSuffix(name, "区") {
		out = append(out, strings.TrimSuffix(name, "区")+"-ku")
	}
	return out
}

func expandRUAdmin(name string) []string {
	var out []string
	for _, suf := range []string{" Oblast", " Kray", " Krai"} {
		if strings.HasSuffix(name, suf) {
			out = append(out, strings.TrimSuffix(name, suf))
		}
	}
	return out
}

var mxRules = []struct {
	prefix string
	abbrs  []string
}{
	{"Colonia ", []string{"Col "}},
	{"Delegacion ", []string{"Del ", "Deleg "}},
	{"Delegación ", []string{"Del ", "Deleg "}},
	{"Ciudad ", []string{"Cd "}},
}

func expandMXAbbrevs(name string) []string {
	var out []string
	for _, r := range mxRules {
		if strings.HasPrefix(name, r.prefix) {
			rest := name[len(r.prefix):]
			for _, abbr := range r.abbrs {
				out = append(out, abbr+rest)
			}
		}
	}
	return out
}
