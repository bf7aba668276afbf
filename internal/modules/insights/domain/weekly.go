package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekly tone bounds. These are deliberately not the label thresholds.
const (
	WeeklyPositiveThreshold = 0.2
	WeeklyNegativeThreshold = -0.2
)

const (
	WeeklyWindow = 7 * 24 * time.Hour

	weeklyThemesPerGroup = 2
	morningEndsHour      = 12
	eveningStartsHour    = 18
)

const (
	WeeklyNoEntries     = "No entries yet for a weekly reflection."
	WeeklyNoRecent      = "No entries in the last week."
	weeklyTonePositive  = "Overall, your writing carried a positive, uplifting tone."
	weeklyToneNegative  = "Overall, your writing carried a heavier tone. Be gentle with yourself."
	weeklyToneBalanced  = "Overall, your writing felt balanced."
	weeklyMorningRemark = "You tended to write in the morning, a calm way to set up your day."
	weeklyEveningRemark = "Evening reflection seems to be your rhythm, a good way to unwind."
)

// GenerateWeeklyInsights summarizes the entries written in the seven days before
// now. Hours are read in loc to decide between morning and evening writing.
func (a *Analyzer) GenerateWeeklyInsights(entries []Entry, now time.Time, loc *time.Location) string {
	if len(entries) == 0 {
		return WeeklyNoEntries
	}
	if loc == nil {
		loc = time.Local
	}
	week := WeekEntries(entries, now)
	if len(week) == 0 {
		return WeeklyNoRecent
	}

	parts := []string{countSentence(len(week)), toneSentence(a.averageSentiment(week))}

	var emotions, areas []string
	for _, th := range a.ExtractThemes(week) {
		if a.IsEmotion(th.Term) {
			if len(emotions) < weeklyThemesPerGroup {
				emotions = append(emotions, th.Term)
			}
			continue
		}
		if len(areas) < weeklyThemesPerGroup {
			areas = append(areas, th.Term)
		}
	}
	if len(emotions) == 1 {
		parts = append(parts, fmt.Sprintf("The emotion that came up most was %s.", emotions[0]))
	} else if len(emotions) > 1 {
		parts = append(parts, fmt.Sprintf("The emotions that came up most were %s.", joinAnd(emotions)))
	}
	if len(areas) > 0 {
		parts = append(parts, fmt.Sprintf("You often wrote about %s.", joinAnd(areas)))
	}

	morning, evening := 0, 0
	for _, e := range week {
		hour := e.CreatedAt.In(loc).Hour()
		switch {
		case hour < morningEndsHour:
			morning++
		case hour >= eveningStartsHour:
			evening++
		}
	}
	switch {
	case morning > evening:
		parts = append(parts, weeklyMorningRemark)
	case evening > morning:
		parts = append(parts, weeklyEveningRemark)
	}
	return strings.Join(parts, " ")
}

// WeekEntries keeps the entries written at or after now minus WeeklyWindow.
func WeekEntries(entries []Entry, now time.Time) []Entry {
	cutoff := now.Add(-WeeklyWindow)
	week := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			week = append(week, e)
		}
	}
	return week
}

func countSentence(n int) string {
	if n == 1 {
		return "You wrote 1 entry this week."
	}
	return fmt.Sprintf("You wrote %d entries this week.", n)
}

func toneSentence(avg float64) string {
	switch {
	case avg > WeeklyPositiveThreshold:
		return weeklyTonePositive
	case avg < WeeklyNegativeThreshold:
		return weeklyToneNegative
	default:
		return weeklyToneBalanced
	}
}

func joinAnd(terms []string) string {
	switch len(terms) {
	case 0:
		return ""
	case 1:
		return terms[0]
	default:
		return strings.Join(terms[:len(terms)-1], ", ") + " and " + terms[len(terms)-1]
	}
}
