// skillz/matcher_test.go
package skillz_test

import (
	"testing"
	"unicode/utf8"

	"github.com/pranav244872/skillswap/skillz"
	"github.com/stretchr/testify/require"
)

type level int

func (l level) String() string { return [...]string{"Beginner", "Expert"}[l] }

////////////////////////////////////////////////////////////////////////
// NormalizeSkills
////////////////////////////////////////////////////////////////////////

func TestNormalizeSkills(t *testing.T) {
	goTag := "  Go  "

	testCases := []struct {
		name string
		raw  any
		want []string
	}{
		{
			name: "Case and whitespace collapse to one tag",
			raw:  []string{"  React ", "react", "REACT"},
			want: []string{"react"},
		},
		{
			name: "Empty and blank entries are dropped",
			raw:  []string{"", "  ", "Go"},
			want: []string{"go"},
		},
		{
			name: "Garbage elements are coerced or dropped",
			raw:  []any{nil, 42, "  Go  "},
			want: []string{"42", "go"},
		},
		{
			name: "Floats and booleans are formatted",
			raw:  []any{4.5, true, float64(3)},
			want: []string{"4.5", "true", "3"},
		},
		{
			name: "Composite elements are dropped",
			raw:  []any{map[string]any{"a": 1}, []string{"x"}, struct{}{}, "Rust"},
			want: []string{"rust"},
		},
		{
			name: "Pointers are dereferenced and nil pointers dropped",
			raw:  []any{&goTag, (*string)(nil)},
			want: []string{"go"},
		},
		{
			name: "Stringer elements use their String method",
			raw:  []any{level(1), level(0)},
			want: []string{"expert", "beginner"},
		},
		{
			name: "Typed slices are accepted",
			raw:  []int{7, 7, 8},
			want: []string{"7", "8"},
		},
		{
			name: "Arrays and pointers to slices are accepted",
			raw:  &[]string{"Python", "python "},
			want: []string{"python"},
		},
		{
			name: "Fixed-size array",
			raw:  [2]string{"Guitar", "Piano"},
			want: []string{"guitar", "piano"},
		},
		{
			name: "Full-width forms fold to ASCII",
			raw:  []string{"Ｇｏ", "go"},
			want: []string{"go"},
		},
		{
			name: "Nil input is empty",
			raw:  nil,
			want: []string{},
		},
		{
			name: "A plain string is not a list",
			raw:  "react",
			want: []string{},
		},
		{
			name: "A number is not a list",
			raw:  42,
			want: []string{},
		},
		{
			name: "A map is not a list",
			raw:  map[string]string{"a": "b"},
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := skillz.NormalizeSkills(tc.raw)
			require.Equal(t, tc.want, got.Values())
			require.Equal(t, len(tc.want), got.Len())
			for _, tag := range tc.want {
				require.True(t, got.Has(tag))
			}
		})
	}
}

func TestNormalizeSkillsIdempotent(t *testing.T) {
	inputs := []any{
		[]string{"  React ", "react", "Guitar", ""},
		[]any{nil, 42, "  Go  ", 4.5},
		[]string{"Ｇｏ", "Spanish", "SPANISH"},
		nil,
	}

	for _, raw := range inputs {
		once := skillz.NormalizeSkills(raw)

		// Normalizing the set itself and its values must both be stable.
		require.True(t, once.Equal(skillz.NormalizeSkills(once)))
		require.True(t, once.Equal(skillz.NormalizeSkills(once.Values())))
		require.Equal(t, once.Values(), skillz.NormalizeSkills(once.Values()).Values())
	}
}

func TestNormalizeTagCombiningMarks(t *testing.T) {
	for _, label := range []string{"İ͇", "𝝪̓", "Ϋ͂ⷁ", "𐓀̈́̿", "ǅ̣̇"} {
		once := skillz.NormalizeTag(label)
		require.Equal(t, once, skillz.NormalizeTag(once), "label %q", label)
	}

	// A tag stored in normalized form must still meet the text it came from.
	raw := []string{"İ͇"}
	stored := skillz.NormalizeSkills(raw).Values()
	require.True(t, skillz.NormalizeSkills(stored).Equal(skillz.NormalizeSkills(raw)))
	require.Equal(t, stored, skillz.Intersect(raw, stored))
}

func FuzzNormalizeTag(f *testing.F) {
	for _, seed := range []string{"", "  Go ", "Ｇｏ", "SPANISH", "İ͇", "𝝪̓", "Ϋ͂ⷁ", "𐓀̈́̿", "ﬁ"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, label string) {
		if !utf8.ValidString(label) {
			t.Skip()
		}
		once := skillz.NormalizeTag(label)
		require.Equal(t, once, skillz.NormalizeTag(once))
	})
}

func TestSkillSetEqualIgnoresOrder(t *testing.T) {
	a := skillz.NormalizeSkills([]string{"go", "rust"})
	b := skillz.NormalizeSkills([]string{"Rust", "Go"})
	c := skillz.NormalizeSkills([]string{"go"})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, skillz.SkillSet{}.Equal(skillz.NormalizeSkills(nil)))
}

func TestSkillSetValuesIsACopy(t *testing.T) {
	set := skillz.NormalizeSkills([]string{"go"})
	values := set.Values()
	values[0] = "mutated"

	require.Equal(t, []string{"go"}, set.Values())
}

////////////////////////////////////////////////////////////////////////
// Intersect
////////////////////////////////////////////////////////////////////////

func TestIntersect(t *testing.T) {
	t.Run("Keeps the order of the first list", func(t *testing.T) {
		got := skillz.Intersect(
			[]string{"Python", "Go", "React"},
			[]string{"react", "python"},
		)
		require.Equal(t, []string{"python", "react"}, got)
	})

	t.Run("Commutative up to ordering", func(t *testing.T) {
		a := []any{"Go", " Rust", 42, "SQL"}
		b := []string{"sql", "42", "go", "Haskell"}

		ab := skillz.NormalizeSkills(skillz.Intersect(a, b))
		ba := skillz.NormalizeSkills(skillz.Intersect(b, a))
		require.True(t, ab.Equal(ba))
		require.Equal(t, 3, ab.Len())
	})

	t.Run("Self intersection reproduces the normalized set", func(t *testing.T) {
		inputs := []any{
			[]string{"  React ", "react", "Guitar"},
			[]any{nil, 42, "Go"},
			[]string{},
		}
		for _, raw := range inputs {
			require.Equal(t, skillz.NormalizeSkills(raw).Values(), skillz.Intersect(raw, raw))
		}
	})

	t.Run("Empty inputs give an empty result", func(t *testing.T) {
		require.Empty(t, skillz.Intersect(nil, []string{"go"}))
		require.Empty(t, skillz.Intersect([]string{"go"}, nil))
		require.NotNil(t, skillz.Intersect(nil, nil))
	})

	t.Run("Deterministic for identical inputs", func(t *testing.T) {
		a := []string{"c", "a", "b", "d"}
		b := []string{"d", "b", "a"}
		first := skillz.Intersect(a, b)
		for range 20 {
			require.Equal(t, first, skillz.Intersect(a, b))
		}
	})
}

////////////////////////////////////////////////////////////////////////
// IsMutualMatch and ComputeMatchScore
////////////////////////////////////////////////////////////////////////

func TestMatchScenarios(t *testing.T) {
	testCases := []struct {
		name       string
		aHave      any
		aWant      any
		bHave      any
		bWant      any
		wantMutual bool
		wantScore  int
	}{
		{
			name:       "Full coverage both ways",
			aHave:      []string{"React", "Guitar"},
			aWant:      []string{"Python"},
			bHave:      []string{"Python"},
			bWant:      []string{"React"},
			wantMutual: true,
			wantScore:  100,
		},
		{
			name:       "Half coverage in one direction",
			aHave:      []string{"React"},
			aWant:      []string{"Python", "Spanish"},
			bHave:      []string{"Python"},
			bWant:      []string{"React"},
			wantMutual: true,
			wantScore:  75,
		},
		{
			name:       "No overlap",
			aHave:      []string{"CSS"},
			aWant:      []string{"Java"},
			bHave:      []string{"Go"},
			bWant:      []string{"Rust"},
			wantMutual: false,
			wantScore:  0,
		},
		{
			name:       "One direction only is not mutual",
			aHave:      []string{"React"},
			aWant:      []string{"Java"},
			bHave:      []string{"Go"},
			bWant:      []string{"React"},
			wantMutual: false,
			wantScore:  50,
		},
		{
			name:       "Half of a half rounds half up",
			aHave:      []string{"a"},
			aWant:      []string{"z"},
			bHave:      []string{"y"},
			bWant:      []string{"a", "b", "c", "d"},
			wantMutual: false,
			wantScore:  13, // (0.25 + 0) / 2 * 100 = 12.5
		},
		{
			name:       "Thirds round to nearest",
			aHave:      []string{"a"},
			aWant:      []string{"x"},
			bHave:      []string{"x"},
			bWant:      []string{"a", "b", "c"},
			wantMutual: true,
			wantScore:  67, // (1/3 + 1) / 2 * 100 = 66.67
		},
		{
			name:       "Duplicate wants count once",
			aHave:      []string{"React"},
			aWant:      []string{"Python"},
			bHave:      []string{"python"},
			bWant:      []string{"React", "react", " REACT "},
			wantMutual: true,
			wantScore:  100,
		},
		{
			name:       "Garbage input degrades silently",
			aHave:      "not a list",
			aWant:      map[string]int{"go": 1},
			bHave:      []any{nil, 42},
			bWant:      nil,
			wantMutual: false,
			wantScore:  0,
		},
		{
			name:       "All empty",
			aHave:      []string{},
			aWant:      []string{},
			bHave:      []string{},
			bWant:      []string{},
			wantMutual: false,
			wantScore:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantMutual, skillz.IsMutualMatch(tc.aHave, tc.aWant, tc.bHave, tc.bWant))
			require.Equal(t, tc.wantScore, skillz.ComputeMatchScore(tc.aHave, tc.aWant, tc.bHave, tc.bWant))

			// Swapping roles never changes mutuality or the score.
			require.Equal(t, tc.wantMutual, skillz.IsMutualMatch(tc.bHave, tc.bWant, tc.aHave, tc.aWant))
			require.Equal(t, tc.wantScore, skillz.ComputeMatchScore(tc.bHave, tc.bWant, tc.aHave, tc.aWant))
		})
	}
}

func TestComputeMatchScoreBounds(t *testing.T) {
	lists := [][]string{
		{},
		{"go"},
		{"go", "rust"},
		{"Rust", "python", "sql"},
		{"a", "b", "c", "d", "e", "f", "g"},
	}

	for _, aHave := range lists {
		for _, aWant := range lists {
			for _, bHave := range lists {
				for _, bWant := range lists {
					got := skillz.ComputeMatchScore(aHave, aWant, bHave, bWant)
					require.GreaterOrEqual(t, got, 0)
					require.LessOrEqual(t, got, 100)
				}
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	a := skillz.Profile{Teaches: []string{"React", "Guitar"}, Wants: []string{"Python", "Spanish"}}
	b := skillz.Profile{Teaches: []string{"Spanish", "Python"}, Wants: []string{"guitar"}}

	got := skillz.Evaluate(a, b)

	require.True(t, got.Mutual)
	require.Equal(t, 100, got.Score)
	require.Equal(t, []string{"guitar"}, got.ATeachesB)
	require.Equal(t, []string{"spanish", "python"}, got.BTeachesA)
	require.Equal(t, skillz.IsMutualMatch(a.Teaches, a.Wants, b.Teaches, b.Wants), got.Mutual)
	require.Equal(t, skillz.ComputeMatchScore(a.Teaches, a.Wants, b.Teaches, b.Wants), got.Score)
}

func TestMatcherConcurrentUse(t *testing.T) {
	a := skillz.Profile{Teaches: []string{"React"}, Wants: []string{"Python", "Spanish"}}
	b := skillz.Profile{Teaches: []string{"Python"}, Wants: []string{"React"}}

	done := make(chan int, 16)
	for range 16 {
		go func() { done <- skillz.Evaluate(a, b).Score }()
	}
	for range 16 {
		require.Equal(t, 75, <-done)
	}
}

////////////////////////////////////////////////////////////////////////
// Rank
////////////////////////////////////////////////////////////////////////

type candidate struct {
	name    string
	profile skillz.Profile
}

func TestRank(t *testing.T) {
	me := skillz.Profile{Teaches: []string{"React"}, Wants: []string{"Python", "Spanish"}}

	candidates := []candidate{
		{"none", skillz.Profile{Teaches: []string{"Go"}, Wants: []string{"Rust"}}},
		{"half", skillz.Profile{Teaches: []string{"Python"}, Wants: []string{"React"}}},
		{"full", skillz.Profile{Teaches: []string{"Python", "Spanish"}, Wants: []string{"React"}}},
		{"oneway", skillz.Profile{Teaches: []string{"Go"}, Wants: []string{"React"}}},
		{"half-too", skillz.Profile{Teaches: []string{"spanish"}, Wants: []string{"react"}}},
	}
	profileOf := func(c candidate) skillz.Profile { return c.profile }

	t.Run("Orders by score and keeps ties stable", func(t *testing.T) {
		ranked := skillz.Rank(me, candidates, profileOf, false)
		require.Len(t, ranked, len(candidates))

		names := make([]string, len(ranked))
		for i, r := range ranked {
			names[i] = r.Item.name
		}
		require.Equal(t, []string{"full", "half", "half-too", "oneway", "none"}, names)
		require.Equal(t, 100, ranked[0].Match.Score)
		require.Equal(t, 0, ranked[len(ranked)-1].Match.Score)
	})

	t.Run("Mutual only drops one-way candidates", func(t *testing.T) {
		ranked := skillz.Rank(me, candidates, profileOf, true)
		require.Len(t, ranked, 3)
		for _, r := range ranked {
			require.True(t, r.Match.Mutual)
		}
	})

	t.Run("No candidates", func(t *testing.T) {
		require.Empty(t, skillz.Rank(me, nil, profileOf, false))
	})
}
