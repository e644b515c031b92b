package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min // swap if needed
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random name which can be used for anything
func RandomName() string {
	return RandomString(6)
}

// RandomEmail generates a random email
func RandomEmail() string {
	return RandomString(7) + "@" + RandomString(6) + ".com"
}

// RandomSkill returns a skill tag that is unlikely to collide with other
// fixtures, e.g. "guitar-qwerty".
func RandomSkill() string {
	bases := []string{
		"guitar", "spanish", "react", "python", "photography", "chess",
		"watercolor", "go", "french", "piano", "sql", "yoga",
	}
	return bases[rand.Intn(len(bases))] + "-" + RandomString(6)
}

// RandomSkills returns n distinct random skill tags.
func RandomSkills(n int) []string {
	skills := make([]string, 0, n)
	for range n {
		skills = append(skills, RandomSkill())
	}
	return skills
}

// RandomCategory returns one of the skill post categories.
func RandomCategory() string {
	categories := []string{
		"Development", "Design", "Data Science", "Marketing", "Photography",
		"Languages", "Music", "Business", "Writing", "Other",
	}
	return categories[rand.Intn(len(categories))]
}

// RandomRating returns a star rating between 1 and 5.
func RandomRating() int32 {
	return int32(RandomInt(1, 5))
}

// RandomDescription returns a short skill post description.
func RandomDescription() string {
	verbs := []string{"Teach", "Share", "Coach", "Show", "Mentor"}
	topics := []string{
		"weekend jam sessions", "conversation practice", "code reviews",
		"portfolio feedback", "exam prep", "beginner basics",
	}

	return fmt.Sprintf("%s %s, looking for a swap. (%s)",
		verbs[rand.Intn(len(verbs))],
		topics[rand.Intn(len(topics))],
		RandomString(4),
	)
}
