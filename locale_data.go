package geocanon

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/gb_aliases.yml
var gbAliasesYAML []byte

//go:embed data/ie_exonyms.yml
var ieExonymsYAML []byte

// localeSupport mirrors derive.py's per-country support tables, loaded
// from small embedded YAML files the same way _load_support reads
// data/*.yml, rather than hand-writing string literals inline.
type localeSupport struct {
	gbAliases map[string][]string // GB place -> historical/alternate names
	ieExonyms map[string]string   // Irish-language county exonym -> "Co <English>"
}

var locale = mustLoadLocaleSupport()

func mustLoadLocaleSupport() localeSupport {
	var gb map[string][]string
	if err := yaml.Unmarshal(gbAliasesYAML, &gb); err != nil {
		panic("geocanon: malformed gb_aliases.yml: " + err.Error())
	}
	var ie map[string]string
	if err := yaml.Unmarshal(ieExonymsYAML, &ie); err != nil {
		panic("geocanon: malformed ie_exonyms.yml: " + err.Error())
	}
	return localeSupport{gbAliases: gb, ieExonyms: ie}
}
