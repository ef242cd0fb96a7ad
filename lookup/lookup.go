// Package lookup resolves the candidate readings of a window of an entry and
// memoizes them across entries.
package lookup

import (
	"github.com/puzpuzpuz/xsync/v3"

	"furiganaalign/kana"
	"furiganaalign/kanji"
	"furiganaalign/model"
	"furiganaalign/reading"
)

// Window is a (start, length) view over an entry's characters.
type Window struct {
	Start  int
	Length int
}

// End is the index one past the window's last character.
func (w Window) End() int {
	return w.Start + w.Length
}

type cacheKey struct {
	text      string
	effective string // multi-character windows whose iteration marks expand
	isName    bool
	isFirst   bool
	isLast    bool
}

// Cache is a read-through cache of candidate readings backed by a
// ResourceSet. Results depend only on their key, so one Cache is safe to share
// between goroutines solving different entries.
type Cache struct {
	resources *kanji.ResourceSet
	entries   *xsync.MapOf[cacheKey, []string]
}

// NewCache creates an empty cache over rs.
func NewCache(rs *kanji.ResourceSet) *Cache {
	return &Cache{
		resources: rs,
		entries:   xsync.NewMapOf[cacheKey, []string](),
	}
}

// Resources returns the ResourceSet the cache reads from.
func (c *Cache) Resources() *kanji.ResourceSet {
	return c.resources
}

// MaxWindow is the longest window worth looking up.
func (c *Cache) MaxWindow() int {
	return c.resources.MaxExpressionLength()
}

// Len returns the number of memoized keys.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// CandidatesFor returns the readings the window of e may take. The returned
// slice is shared and must not be modified.
func (c *Cache) CandidatesFor(e model.Entry, w Window) []string {
	if w.Length <= 0 || w.Start < 0 || w.End() > e.Len() {
		return nil
	}
	key := cacheKey{
		isName:  e.IsName(),
		isFirst: w.Start == 0,
		isLast:  w.End() == e.Len(),
	}
	if w.Length == 1 {
		key.text = string(e.Effective[w.Start])
	} else {
		key.text = string(e.Raw[w.Start:w.End()])
		if eff := string(e.Effective[w.Start:w.End()]); eff != key.text {
			key.effective = eff
		}
	}
	if v, ok := c.entries.Load(key); ok {
		return v
	}
	var out []string
	if w.Length == 1 {
		out = c.character(e.Effective[w.Start], key)
	} else {
		out = c.expression(key)
	}
	v, _ := c.entries.LoadOrStore(key, out)
	return v
}

func (c *Cache) character(r rune, key cacheKey) []string {
	if key.isName {
		if k, ok := c.resources.LookupNameCharacter(r); ok {
			return reading.PotentialReadings(k, key.isFirst, key.isLast, true)
		}
	}
	if k, ok := c.resources.LookupCharacter(r); ok {
		return reading.PotentialReadings(k, key.isFirst, key.isLast, key.isName)
	}
	if kana.IsKana(r) {
		return []string{kana.ToHiragana(string(r))}
	}
	return nil
}

func (c *Cache) expression(key cacheKey) []string {
	if ex, ok := c.resources.LookupExpression(key.text); ok {
		return normalize(ex.Readings)
	}
	if key.effective != "" {
		if ex, ok := c.resources.LookupExpression(key.effective); ok {
			return normalize(ex.Readings)
		}
	}
	return nil
}

func normalize(readings []string) []string {
	out := make([]string, 0, len(readings))
	for _, r := range readings {
		if r = kana.ToHiragana(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
