// Package timefmt renders epoch-millisecond instants as localized date and
// time strings using CLDR data from go-playground/locales.
package timefmt

import (
	"math"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ja_JP"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// InvalidDate is shown for timestamps that do not denote an instant.
const InvalidDate = "Invalid Date"

// maxMillis is the largest magnitude a date value may have (±100,000,000 days).
const maxMillis = 8.64e15

// Formatter turns epoch milliseconds into display strings.
type Formatter interface {
	// Full is the full-precision date and time, used for hover titles.
	Full(ms float64) string
	// Short is the hour and minute, used in entry headers.
	Short(ms float64) string
}

var universal = ut.New(en.New(),
	en.New(), en_US.New(), en_GB.New(),
	fr.New(), fr_FR.New(),
	de.New(), de_DE.New(),
	es.New(), es_ES.New(),
	it.New(), nl.New(),
	pt.New(), pt_BR.New(),
	ja.New(), ja_JP.New(),
	zh.New(),
)

// LocaleFormatter formats instants with a CLDR translator in a fixed zone.
type LocaleFormatter struct {
	trans locales.Translator
	loc   *time.Location
}

// New returns a formatter for locale rendering in loc. Unknown locales fall
// back to the base language, then to English. A nil loc means time.Local.
func New(locale string, loc *time.Location) *LocaleFormatter {
	if loc == nil {
		loc = time.Local
	}
	return &LocaleFormatter{trans: Resolve(locale), loc: loc}
}

// Resolve finds the most specific supported translator for locale.
func Resolve(locale string) locales.Translator {
	for _, candidate := range candidates(locale) {
		if trans, found := universal.GetTranslator(candidate); found {
			return trans
		}
	}
	return universal.GetFallback()
}

func candidates(locale string) []string {
	raw := strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	out := []string{}
	if raw != "" {
		out = append(out, raw)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return out
	}
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		out = append(out, base.String()+"_"+region.String())
	}
	return append(out, base.String())
}

// Locale reports the resolved CLDR locale name.
func (f *LocaleFormatter) Locale() string {
	return f.trans.Locale()
}

// Full implements Formatter.
func (f *LocaleFormatter) Full(ms float64) string {
	t, ok := Instant(ms)
	if !ok {
		return InvalidDate
	}
	t = t.In(f.loc)
	return f.trans.FmtDateMedium(t) + ", " + clock(f.trans.FmtTimeMedium, t)
}

// Short implements Formatter.
func (f *LocaleFormatter) Short(ms float64) string {
	t, ok := Instant(ms)
	if !ok {
		return InvalidDate
	}
	return clock(f.trans.FmtTimeShort, t.In(f.loc))
}

// clock formats t with format, rendering the midnight hour as 12 on
// 12-hour clocks. The CLDR translators print it as 0.
func clock(format func(time.Time) string, t time.Time) string {
	if t.Hour() != 0 {
		return format(t)
	}
	ref := time.Date(2000, time.January, 1, 1, 0, 0, 0, time.UTC)
	am, pm := periodMarkers(format(ref), format(ref.Add(12*time.Hour)))
	if am == "" || pm == "" {
		return format(t)
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return strings.Replace(format(noon), pm, am, 1)
}

// periodMarkers returns the parts where a 01:00 and a 13:00 rendering
// differ. Both are empty for 24-hour clocks, where the hour digits differ
// instead.
func periodMarkers(morning, afternoon string) (string, string) {
	a, b := []rune(morning), []rune(afternoon)
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	j := 0
	for j < len(a)-i && j < len(b)-i && a[len(a)-1-j] == b[len(b)-1-j] {
		j++
	}
	am, pm := string(a[i:len(a)-j]), string(b[i:len(b)-j])
	if strings.ContainsAny(am+pm, "0123456789") {
		return "", ""
	}
	return am, pm
}

// Instant converts epoch milliseconds to a time. It reports false for NaN,
// infinities and values outside the representable date range.
func Instant(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxMillis {
		return time.Time{}, false
	}
	ms = math.Trunc(ms)
	sec := math.Floor(ms / 1000)
	rem := ms - sec*1000
	return time.Unix(int64(sec), int64(rem)*int64(time.Millisecond)), true
}
