// skillz/matcher.go
package skillz

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

////////////////////////////////////////////////////////////////////////
// Types
////////////////////////////////////////////////////////////////////////

// SkillSet is a deduplicated set of normalized skill tags.
// It remembers the order in which tags were first seen so that every
// operation built on top of it is reproducible for identical inputs.
// The zero value is an empty set.
type SkillSet struct {
	tags  []string
	index map[string]struct{}
}

// Profile is the pair of skill lists a user brings to an exchange.
type Profile struct {
	Teaches []string `json:"teaches"`
	Wants   []string `json:"wants"`
}

// MatchResult is computed on demand and never stored by this package.
type MatchResult struct {
	Mutual    bool     `json:"is_mutual"`
	Score     int      `json:"score"`
	ATeachesB []string `json:"a_teaches_b"`
	BTeachesA []string `json:"b_teaches_a"`
}

////////////////////////////////////////////////////////////////////////
// SkillSet methods
////////////////////////////////////////////////////////////////////////

// Len returns the number of distinct tags.
func (s SkillSet) Len() int { return len(s.tags) }

// Has reports whether the already-normalized tag is in the set.
func (s SkillSet) Has(tag string) bool {
	_, ok := s.index[tag]
	return ok
}

// Values returns the tags in first-seen order. The slice is a copy.
func (s SkillSet) Values() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Equal reports whether both sets hold the same tags, ignoring order.
func (s SkillSet) Equal(other SkillSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, tag := range s.tags {
		if !other.Has(tag) {
			return false
		}
	}
	return true
}

func (s *SkillSet) add(tag string) {
	if tag == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, seen := s.index[tag]; seen {
		return
	}
	s.index[tag] = struct{}{}
	s.tags = append(s.tags, tag)
}

////////////////////////////////////////////////////////////////////////
// Normalization
////////////////////////////////////////////////////////////////////////

// maxNormalizePasses bounds the fold loop in NormalizeTag. Real input
// settles after one or two passes.
const maxNormalizePasses = 8

// NormalizeTag folds a single label into its canonical tag form:
// compatibility-normalized (NFKC), lowercased and trimmed.
// It returns "" for labels that are blank after trimming.
//
// Lowercasing can leave text outside NFKC (İ lowers to i plus a combining
// dot, which then sorts against other marks), so the fold repeats until
// the tag stops changing. NormalizeTag(NormalizeTag(s)) == NormalizeTag(s).
func NormalizeTag(label string) string {
	// A Caser carries state, so each call gets its own.
	lower := cases.Lower(language.Und)

	tag := label
	for range maxNormalizePasses {
		next := strings.TrimSpace(norm.NFKC.String(lower.String(norm.NFKC.String(tag))))
		if next == tag {
			break
		}
		tag = next
	}
	return tag
}

// NormalizeSkills turns an arbitrary list of raw values into a SkillSet.
//
// raw may be any slice or array (or a pointer to one). Anything else,
// including nil and plain strings, yields an empty set. Elements are
// coerced to text before normalization:
//   - nil values and nil pointers are dropped
//   - strings and fmt.Stringer values are used as-is
//   - booleans and numbers are formatted (42 -> "42", 4.5 -> "4.5")
//   - non-nil pointers are dereferenced
//   - maps, slices and structs without a String method are dropped
func NormalizeSkills(raw any) SkillSet {
	var set SkillSet

	switch v := raw.(type) {
	case nil:
		return set
	case SkillSet:
		for _, tag := range v.tags {
			set.add(NormalizeTag(tag))
		}
		return set
	case []string:
		for _, label := range v {
			set.add(NormalizeTag(label))
		}
		return set
	case []any:
		for _, elem := range v {
			if label, ok := coerceLabel(elem); ok {
				set.add(NormalizeTag(label))
			}
		}
		return set
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return set
	}
	for i := 0; i < rv.Len(); i++ {
		if label, ok := coerceLabel(rv.Index(i).Interface()); ok {
			set.add(NormalizeTag(label))
		}
	}
	return set
}

// coerceLabel converts one raw list element into text.
// The boolean is false when the element has no sensible text form.
func coerceLabel(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return "", false
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Pointer, reflect.Interface:
		return coerceLabel(rv.Elem().Interface())
	}
	return "", false
}

////////////////////////////////////////////////////////////////////////
// Matching
////////////////////////////////////////////////////////////////////////

// Intersect normalizes a and b independently and returns every tag present
// in both, in the order the tags first appear in a.
func Intersect(a, b any) []string {
	return intersectSets(NormalizeSkills(a), NormalizeSkills(b))
}

func intersectSets(a, b SkillSet) []string {
	out := make([]string, 0)
	for _, tag := range a.tags {
		if b.Has(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// IsMutualMatch reports whether A can teach B something B wants AND
// B can teach A something A wants. One-directional overlap is not mutual.
func IsMutualMatch(aHave, aWant, bHave, bWant any) bool {
	return EvaluateRaw(aHave, aWant, bHave, bWant).Mutual
}

// ComputeMatchScore returns a 0..100 score averaging how much of each
// side's wanted skills the other side can teach.
func ComputeMatchScore(aHave, aWant, bHave, bWant any) int {
	return EvaluateRaw(aHave, aWant, bHave, bWant).Score
}

// Evaluate computes the full match between two typed profiles.
func Evaluate(a, b Profile) MatchResult {
	return EvaluateRaw(a.Teaches, a.Wants, b.Teaches, b.Wants)
}

// EvaluateRaw is Evaluate over loosely typed skill lists. Each list is
// normalized once and shared by the mutuality check and the score.
func EvaluateRaw(aHave, aWant, bHave, bWant any) MatchResult {
	aWantSet := NormalizeSkills(aWant)
	bWantSet := NormalizeSkills(bWant)

	aToB := intersectSets(NormalizeSkills(aHave), bWantSet)
	bToA := intersectSets(NormalizeSkills(bHave), aWantSet)

	return MatchResult{
		Mutual:    len(aToB) > 0 && len(bToA) > 0,
		Score:     score(directionCoverage(aToB, bWantSet), directionCoverage(bToA, aWantSet)),
		ATeachesB: aToB,
		BTeachesA: bToA,
	}
}

// coverage is a fraction kept as integers so the final score rounds exactly.
type coverage struct {
	num, den int
}

// directionCoverage is the share of wanted that taught satisfies, capped at 1.
// When nothing is wanted, any overlap counts as full coverage.
func directionCoverage(taught []string, wanted SkillSet) coverage {
	if wanted.Len() == 0 {
		if len(taught) > 0 {
			return coverage{1, 1}
		}
		return coverage{0, 1}
	}
	return coverage{min(len(taught), wanted.Len()), wanted.Len()}
}

// score is round-half-up of ((d1 + d2) / 2) * 100.
//
//	50 * (n1/d1 + n2/d2) = 100 * (n1*d2 + n2*d1) / (2*d1*d2)
//
// and adding half the denominator before the integer division rounds
// halves upward.
func score(d1, d2 coverage) int {
	den := 2 * d1.den * d2.den
	num := 100 * (d1.num*d2.den + d2.num*d1.den)
	return (num + den/2) / den
}

////////////////////////////////////////////////////////////////////////
// Ranking
////////////////////////////////////////////////////////////////////////

// Ranked pairs a candidate with its match against the caller.
type Ranked[T any] struct {
	Item  T
	Match MatchResult
}

// Rank scores every candidate against me and orders them by score,
// highest first. Candidates with equal scores keep their input order.
// With mutualOnly set, candidates without a two-way overlap are dropped.
func Rank[T any](me Profile, candidates []T, profileOf func(T) Profile, mutualOnly bool) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(candidates))
	for _, c := range candidates {
		result := Evaluate(me, profileOf(c))
		if mutualOnly && !result.Mutual {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: c, Match: result})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match.Score > ranked[j].Match.Score
	})
	return ranked
}
