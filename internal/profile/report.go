package profile

import (
	"fmt"
	"os"
	"strings"
)

// BurnoutRisk reports whether a downtime answer signals that the student is
// not protecting any recovery time. The heuristic is a case-insensitive
// substring match: answers containing "no" or "fill" count as at-risk.
func BurnoutRisk(downtime string) bool {
	d := strings.ToLower(downtime)
	return strings.Contains(d, "no") || strings.Contains(d, "fill")
}

// Render produces the advisor-facing report for a complete profile. It is a
// pure function: equal profiles always render to byte-identical text.
func Render(p Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	banner := strings.Repeat("=", 70)
	lines := []string{
		banner,
		" STUDENT WELLNESS & HABITS PROFILE",
		banner,
		"This report summarizes the student's self-reported daily habits,",
		"commitments, and preferences to inform support strategies.\n",
	}

	lines = append(lines,
		"--- 1. Logistics & Commitments ---",
		fmt.Sprintf("* Living Situation: %s", p.LivingSituation),
		fmt.Sprintf("* Home Base / Parking: %s", p.HomeBase),
	)
	if p.CommuteTime != "" {
		lines = append(lines, fmt.Sprintf("* Average Commute: %s (one-way)", p.CommuteTime))
	}

	lines = append(lines, "\n* Fixed Commitments:")
	if len(p.Commitments) > 0 {
		for _, c := range p.Commitments {
			lines = append(lines, fmt.Sprintf("  - %s", c))
		}
	} else {
		lines = append(lines, "  - No fixed commitments reported.")
	}

	lines = append(lines,
		"\n--- 2. Daily Rhythm & Energy ---",
		fmt.Sprintf("* Ideal Sleep Schedule: Wake up at %s and go to sleep at %s", p.WakeTime, p.BedTime),
		fmt.Sprintf("* Preferred 'Workday': %s to %s", p.WorkdayStart, p.WorkdayEnd),
		fmt.Sprintf("* Peak Focus Time: %s", p.FocusTime),
		"\n  > Advisor Note: Compare ideal sleep with actual commitments.",
		fmt.Sprintf("    A '%s' preference may conflict with", p.FocusTime),
		"    an early class schedule, creating a friction point.",
	)

	spots := "None reported"
	if len(p.StudySpots) > 0 {
		spots = strings.Join(p.StudySpots, ", ")
	}
	lines = append(lines,
		"\n--- 3. Study & Work Preferences ---",
		fmt.Sprintf("* Preferred Study Style: %s", p.StudyStyle),
		fmt.Sprintf("* Task Management: %s", p.TaskApproach),
		fmt.Sprintf("* Weekly Study Goal: %s hours", p.StudyHoursGoal),
		fmt.Sprintf("* Favorite Study Spots: %s", spots),
		fmt.Sprintf("\n  > Advisor Note: The goal of %s hours/week", p.StudyHoursGoal),
		"    is a key self-reported pressure point. The student's task",
		fmt.Sprintf("    approach ('%s') is a good indicator", p.TaskApproach),
		"    of their coping mechanism for difficult work.",
	)

	lines = append(lines,
		"\n--- 4. Personal Habits & Well-being ---",
		fmt.Sprintf("* Meal Habits: %s", p.Meals),
		fmt.Sprintf("* Exercise Frequency: %s", p.ExerciseFreq),
		fmt.Sprintf("* Exercise Duration: %s", p.ExerciseDuration),
		fmt.Sprintf("* Scheduled Downtime: %s", p.Downtime),
	)

	if BurnoutRisk(p.Downtime) {
		lines = append(lines,
			"\n  *** KEY ADVISOR NOTE: BURNOUT RISK ***",
			"  Student reported NOT scheduling dedicated downtime",
			fmt.Sprintf("  (Response: '%s').", p.Downtime),
			"  This is a primary risk factor for burnout and a key",
			"  area for intervention and discussion.",
		)
	} else {
		lines = append(lines,
			"\n  > Advisor Note: The student's meal, exercise, and downtime",
			"    habits are foundational to well-being. Their stated",
			"    downtime preference is a good starting point for",
			"    building a sustainable work-life balance.",
		)
	}

	lines = append(lines, "\n"+banner)

	return strings.Join(lines, "\n"), nil
}

// Save overwrites the report file at path. Callers treat a failed save as a
// degraded run rather than a fatal one: the report is still printed.
func Save(path, report string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}
