// Package quiz drives the interactive questionnaire that builds a student
// profile. Question order, wording, and option labels are fixed: the report
// renderer and the planning prompts depend on the answers verbatim.
package quiz

import (
	"fmt"
	"strings"

	"github.com/robtzou/momentum/internal/profile"
	"github.com/robtzou/momentum/internal/prompt"
)

// Run asks the full question sequence and assembles the answers into a
// Profile. Only menu choices are validated; times and durations are free
// text interpreted by the model downstream.
func Run(s *prompt.Session) profile.Profile {
	var p profile.Profile

	s.Printf("--- Section 1: Logistics & Commitments ---\n")
	p.LivingSituation = profile.LivingSituation(s.Choose(
		"What's your living situation?",
		[]string{
			string(profile.LivingOnCampus),
			string(profile.LivingOffCampus),
		},
	))
	p.HomeBase = s.Ask("What's your primary 'home base' or parking spot? (e.g., North Campus, Lot 4):")
	if p.LivingSituation == profile.LivingOffCampus {
		p.CommuteTime = s.Ask("On average, how long is your one-way commute? (e.g., 30 minutes):")
	}
	p.Commitments = collectCommitments(s)

	s.Printf("\n--- Section 2: Daily Rhythm & Energy ---\n")
	p.WakeTime = s.Ask("What is your ideal wake up time? (e.g., 7:00 AM):")
	p.BedTime = s.Ask("What is your ideal go to bed time? (e.g., 11:00 PM):")
	p.WorkdayStart = s.Ask("When do you want your 'workday' to start? (e.g., 9:00 AM):")
	p.WorkdayEnd = s.Ask("When do you want your 'workday' to stop? (e.g., 5:00 PM):")
	p.FocusTime = profile.FocusTime(s.Choose(
		"When are you most focused?",
		[]string{
			string(profile.FocusMorning),
			string(profile.FocusAfternoon),
			string(profile.FocusEvening),
		},
	))

	s.Printf("\n--- Section 3: Study & Work Preferences ---\n")
	p.StudyStyle = profile.StudyStyle(s.Choose(
		"What's your preferred study style?",
		[]string{
			string(profile.StyleShortBursts),
			string(profile.StyleStandard),
			string(profile.StyleDeepWork),
		},
	))
	p.TaskApproach = profile.TaskApproach(s.Choose(
		"How do you like to tackle a big to-do list?",
		[]string{
			string(profile.ApproachHardestFirst),
			string(profile.ApproachWarmUp),
			string(profile.ApproachMixed),
		},
	))
	p.StudySpots = s.Collect("\nWhere are your favorite places to study?", "study spot")
	p.StudyHoursGoal = s.Ask("As a goal, how many hours per week do you want to dedicate to studying? (e.g., 15):")

	s.Printf("\n--- Section 4: Personal Habits & Goals ---\n")
	p.Meals = profile.MealHabit(s.Choose(
		"How do you handle meals?",
		[]string{
			string(profile.MealsDiningHall),
			string(profile.MealsSelfCook),
			string(profile.MealsGrabAndGo),
		},
	))
	p.ExerciseFreq = s.Ask("How often do you want to exercise? (e.g., 3 times a week):")
	p.ExerciseDuration = s.Ask("How long are your typical workouts? (e.g., 60-90 minutes):")
	p.Downtime = s.Ask("Do you want to schedule dedicated downtime? (e.g., 'Yes, 8 PM - 10 PM', 'No, fill my free time'):")

	return p
}

// collectCommitments repeats the name-then-details pattern: each non-terminal
// event name is followed by four free-text fields.
func collectCommitments(s *prompt.Session) []profile.Commitment {
	s.Printf("\nNext, let's add your fixed commitments (classes, work, etc.).\n")
	var commitments []profile.Commitment
	for {
		name := s.Ask("Enter event name (or type 'done' to finish):")
		if s.Exhausted() || strings.EqualFold(name, "done") {
			return commitments
		}
		c := profile.Commitment{Name: name}
		c.Days = s.Ask(fmt.Sprintf("  Days for %s (e.g., MWF, TTh):", name))
		c.Start = s.Ask(fmt.Sprintf("  Start time for %s:", name))
		c.End = s.Ask(fmt.Sprintf("  End time for %s:", name))
		c.Location = s.Ask(fmt.Sprintf("  Location for %s:", name))
		commitments = append(commitments, c)
	}
}
