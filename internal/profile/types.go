// Package profile defines the student's self-reported schedule preferences
// and renders them into the fixed-layout report the planning pipeline
// consumes.
package profile

import "fmt"

// Enumerated answers carry the exact questionnaire labels so the rendered
// report reads the way the student answered.

type LivingSituation string

const (
	LivingOnCampus  LivingSituation = "On-Campus Resident"
	LivingOffCampus LivingSituation = "Off-Campus (Commuter)"
)

type FocusTime string

const (
	FocusMorning   FocusTime = "Morning (I'm a 'morning person')"
	FocusAfternoon FocusTime = "Afternoon"
	FocusEvening   FocusTime = "Evening / Late Night (I'm a 'night owl')"
)

type StudyStyle string

const (
	StyleShortBursts StudyStyle = "Short Bursts (e.g., Pomodoro - 25 min work, 5 min break)"
	StyleStandard    StudyStyle = "Standard Sessions (e.g., 50 min work, 10 min break)"
	StyleDeepWork    StudyStyle = "Deep Work Blocks (e.g., 90-120 min of focused work)"
)

type TaskApproach string

const (
	ApproachHardestFirst TaskApproach = "Schedule my hardest, most-dreaded tasks first"
	ApproachWarmUp       TaskApproach = "Warm-Up (Schedule 1-2 easy tasks first)"
	ApproachMixed        TaskApproach = "Mix it Up (Alternate between hard and easy tasks)"
)

type MealHabit string

const (
	MealsDiningHall MealHabit = "I go to the dining hall"
	MealsSelfCook   MealHabit = "I cook my own meals"
	MealsGrabAndGo  MealHabit = "I grab quick meals on the go"
)

// Commitment is one fixed block on the student's weekly schedule, such as a
// class or a work shift.
type Commitment struct {
	Name     string
	Days     string
	Start    string
	End      string
	Location string
}

// String renders the commitment the way it appears in the report.
func (c Commitment) String() string {
	return fmt.Sprintf("%s (%s) on %s from %s to %s", c.Name, c.Location, c.Days, c.Start, c.End)
}

// Profile is the full questionnaire result. Time fields are kept exactly as
// entered — the quiz does not parse or validate them; the model downstream
// interprets them.
type Profile struct {
	LivingSituation LivingSituation
	HomeBase        string
	CommuteTime     string // set iff LivingSituation == LivingOffCampus
	Commitments     []Commitment

	WakeTime     string
	BedTime      string
	WorkdayStart string
	WorkdayEnd   string
	FocusTime    FocusTime

	StudyStyle     StudyStyle
	TaskApproach   TaskApproach
	StudySpots     []string
	StudyHoursGoal string

	Meals            MealHabit
	ExerciseFreq     string
	ExerciseDuration string
	Downtime         string
}

// Validate reports whether every mandatory field has been collected. The
// commitments and study-spot lists may be empty; the commute time is
// mandatory only for commuters.
func (p Profile) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"living situation", string(p.LivingSituation)},
		{"home base", p.HomeBase},
		{"wake time", p.WakeTime},
		{"bed time", p.BedTime},
		{"workday start", p.WorkdayStart},
		{"workday end", p.WorkdayEnd},
		{"focus time", string(p.FocusTime)},
		{"study style", string(p.StudyStyle)},
		{"task approach", string(p.TaskApproach)},
		{"study hours goal", p.StudyHoursGoal},
		{"meal habits", string(p.Meals)},
		{"exercise frequency", p.ExerciseFreq},
		{"exercise duration", p.ExerciseDuration},
		{"downtime", p.Downtime},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("profile incomplete: %s not set", r.field)
		}
	}
	if p.LivingSituation == LivingOffCampus && p.CommuteTime == "" {
		return fmt.Errorf("profile incomplete: commute time not set for commuter")
	}
	return nil
}
