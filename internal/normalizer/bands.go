// Package normalizer merges per-file photometry tables into one canonical
// per-object observation set and resolves free-text passband labels
// against a closed vocabulary.
package normalizer

// defaultBandAliases maps the raw band spellings found in source files to
// canonical registry bandpass names.
var defaultBandAliases = map[string]string{
	"U":       "bessellux",
	"B":       "bessellb",
	"V":       "bessellv",
	"R":       "bessellr",
	"I":       "besselli",
	"pg":      "standard::b",
	"pv":      "standard::v",
	"m_v":     "bessellv",
	"m_pg":    "standard::b",
	"B_max":   "bessellb",
	"blue":    "bessellb",
	"red":     "bessellr",
	"'blue'":  "bessellb",
	"'red'":   "bessellr",
	"UNKNOWN": "standard::u",
	"C":       "standard::b",
}

// defaultKnownBands is the closed set of recognized bandpass identifiers.
var defaultKnownBands = []string{
	"skymapperr", "lsstu", "csphs", "cspi", "ps1::z", "sdssu", "ps1::i", "f250m",
	"sdss::g", "keplercam::v", "f1280w", "uvf606w", "f1500w", "gotob", "sdssz",
	"f162m", "f210m", "bessellb", "nicmos2::f110w", "2massks", "f850lp", "2massj",
	"uvf775w", "ps1::w", "f560w", "gaia::grp", "f140w", "ztf::g", "f360m",
	"uvot::uvw2", "f098m", "lsstz", "f127m", "f182m", "atlasc", "f090w", "ztfr",
	"nicf160w", "sdss::i", "hsc::g", "hsc::r", "megacam6::z", "f763m", "f160w",
	"f070w", "hsc::r2", "galex::fuv", "f430m", "hsc::z", "cspjs", "f438w",
	"sdss::r", "uvot::u", "f2100w", "f689m", "nicf110w", "f1800w", "f350lp",
	"cspu", "acswf::f775w", "cspv3009", "standard::v", "skymapperz", "f335m",
	"f2550w", "keplercam::us", "f625w", "f184", "f218w", "acswf::f606w", "lsstg",
	"desr", "gotog", "swope2::h", "f356w", "swope2::v1", "hsc::y", "swope2::i",
	"f480m", "swope2::g", "f606w", "f105w", "swope2::v2", "ztfg", "sdssi",
	"besselli", "megacam6::i", "desg", "f225w", "f2300c", "ps1::open", "f555w",
	"f140m", "cspb", "sdss::u", "ztf::r", "acswf::f850lp", "uvf555w", "ztf::i",
	"4shooter2::us", "f845m", "f770w", "f153m", "cspk", "lssti", "desi",
	"f1550c", "f129", "2massh", "cspr", "f390w", "f125w", "csphd", "swope2::r",
	"nicmos2::f160w", "sdss::z", "f300x", "bessellr", "skymapperg", "f213",
	"galex::nuv", "sdssg", "cspyd", "swope2::u", "cspg", "desz", "4shooter2::r",
	"f336w", "gaia::grvs", "f150w", "megacam6::i2", "f300m", "f087", "ps1::r",
	"hsc::i", "uvot::uvm2", "lssty", "swope2::j", "4shooter2::b", "gaia::g",
	"standard::r", "megacam6::g", "f275w", "ztfi", "swope2::b", "cspv3014",
	"standard::u", "uvot::white", "desu", "uvot::b", "atlaso", "f110w",
	"keplercam::b", "f146", "cspys", "f435w", "f115w", "sdssr", "gotol", "tess",
	"keplercam::i", "f460m", "cspv9844", "f1065c", "f1140c", "desy",
	"4shooter2::i", "f444w", "hsc::i2", "skymapperi", "ps1::y", "f200w",
	"standard::i", "kepler", "f1130w", "4shooter2::v", "uvf850lp", "standard::b",
	"f139m", "f062", "megacam6::r", "f158", "ps1::g", "swope2::y", "uvf814w",
	"f1000w", "f475w", "f106", "uvot::v", "f775w", "uvf625w", "gotor", "lsstr",
	"keplercam::r", "gaia::gbp", "uvf475w", "skymapperu", "cspjd", "f410m",
	"bessellv", "bessellux", "uvot::uvw1", "swope2::v", "f277w",
}

// Vocabulary is the process-wide, read-only passband vocabulary: an alias
// table from raw labels to canonical identifiers plus the closed set of
// recognized identifiers. Built once before any object is processed and
// never mutated afterward.
type Vocabulary struct {
	aliases map[string]string
	known   map[string]struct{}
}

// NewVocabulary builds the default vocabulary.
func NewVocabulary() *Vocabulary {
	return NewVocabularyWith(defaultBandAliases, defaultKnownBands)
}

// NewVocabularyWith builds a vocabulary from explicit tables, copying both
// so later mutation of the inputs cannot leak in.
func NewVocabularyWith(aliases map[string]string, known []string) *Vocabulary {
	v := &Vocabulary{
		aliases: make(map[string]string, len(aliases)),
		known:   make(map[string]struct{}, len(known)),
	}

	for from, to := range aliases {
		v.aliases[from] = to
	}

	for _, band := range known {
		v.known[band] = struct{}{}
	}

	return v
}

// Canonical maps a raw label through the alias table. The second return
// reports whether the label had an alias entry; labels without one pass
// through unchanged.
func (v *Vocabulary) Canonical(label string) (string, bool) {
	if mapped, ok := v.aliases[label]; ok {
		return mapped, true
	}

	return label, false
}

// IsKnown reports whether a band belongs to the closed vocabulary.
func (v *Vocabulary) IsKnown(band string) bool {
	_, ok := v.known[band]

	return ok
}
