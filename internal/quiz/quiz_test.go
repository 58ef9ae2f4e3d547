package quiz

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/robtzou/momentum/internal/profile"
	"github.com/robtzou/momentum/internal/prompt"
)

// script joins answers into the line-oriented input the session reads.
func script(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func residentAnswers() []string {
	return []string{
		"1",               // living situation: on-campus
		"North Campus",    // home base
		"Chem 101",        // commitment name
		"MWF",             // days
		"9:00 AM",         // start
		"10:00 AM",        // end
		"Hall A",          // location
		"done",            // end commitments
		"7:00 AM",         // wake
		"11:00 PM",        // bed
		"9:00 AM",         // workday start
		"5:00 PM",         // workday end
		"1",               // focus: morning
		"3",               // study style: deep work
		"1",               // task approach: hardest first
		"Library",         // study spot
		"DONE",            // end spots
		"15",              // weekly goal
		"1",               // meals: dining hall
		"3 times a week",  // exercise frequency
		"60-90 minutes",   // exercise duration
		"Yes, 8 PM - 10 PM", // downtime
	}
}

func TestRun_ResidentFullSequence(t *testing.T) {
	out := &bytes.Buffer{}
	s := prompt.NewSession(strings.NewReader(script(residentAnswers()...)), out)

	p := Run(s)

	if err := p.Validate(); err != nil {
		t.Fatalf("collected profile incomplete: %v", err)
	}
	if p.LivingSituation != profile.LivingOnCampus {
		t.Errorf("LivingSituation = %q", p.LivingSituation)
	}
	if p.CommuteTime != "" {
		t.Errorf("CommuteTime = %q, residents must not be asked about commutes", p.CommuteTime)
	}
	if strings.Contains(out.String(), "one-way commute") {
		t.Error("resident run printed the commute question")
	}

	wantCommitments := []profile.Commitment{
		{Name: "Chem 101", Days: "MWF", Start: "9:00 AM", End: "10:00 AM", Location: "Hall A"},
	}
	if !reflect.DeepEqual(p.Commitments, wantCommitments) {
		t.Errorf("Commitments = %+v, want %+v", p.Commitments, wantCommitments)
	}
	if !reflect.DeepEqual(p.StudySpots, []string{"Library"}) {
		t.Errorf("StudySpots = %v, want [Library]", p.StudySpots)
	}
	if p.FocusTime != profile.FocusMorning {
		t.Errorf("FocusTime = %q", p.FocusTime)
	}
	if p.StudyStyle != profile.StyleDeepWork {
		t.Errorf("StudyStyle = %q", p.StudyStyle)
	}
	if p.Downtime != "Yes, 8 PM - 10 PM" {
		t.Errorf("Downtime = %q", p.Downtime)
	}
}

func TestRun_CommuterIsAskedForCommute(t *testing.T) {
	answers := []string{
		"2",          // living situation: commuter
		"Lot 4",      // home base
		"30 minutes", // commute
		"done",       // no commitments
		"8:00 AM",
		"12:00 AM",
		"10:00 AM",
		"6:00 PM",
		"3", // focus: evening
		"1", // style: short bursts
		"2", // approach: warm-up
		"done", // no study spots
		"10",
		"3", // meals: grab and go
		"daily",
		"30 minutes",
		"No, fill my free time",
	}
	out := &bytes.Buffer{}
	s := prompt.NewSession(strings.NewReader(script(answers...)), out)

	p := Run(s)

	if err := p.Validate(); err != nil {
		t.Fatalf("collected profile incomplete: %v", err)
	}
	if p.LivingSituation != profile.LivingOffCampus {
		t.Errorf("LivingSituation = %q", p.LivingSituation)
	}
	if p.CommuteTime != "30 minutes" {
		t.Errorf("CommuteTime = %q, want 30 minutes", p.CommuteTime)
	}
	if len(p.Commitments) != 0 {
		t.Errorf("Commitments = %v, want none", p.Commitments)
	}
	if len(p.StudySpots) != 0 {
		t.Errorf("StudySpots = %v, want none", p.StudySpots)
	}
}

func TestRun_InvalidMenuInputDoesNotLoseAnswers(t *testing.T) {
	answers := residentAnswers()
	// Garbage before the focus-time choice: re-prompt must not disturb the
	// answers already collected.
	withGarbage := append([]string{}, answers[:12]...)
	withGarbage = append(withGarbage, "banana", "99")
	withGarbage = append(withGarbage, answers[12:]...)

	out := &bytes.Buffer{}
	s := prompt.NewSession(strings.NewReader(script(withGarbage...)), out)

	p := Run(s)

	if err := p.Validate(); err != nil {
		t.Fatalf("collected profile incomplete: %v", err)
	}
	if p.HomeBase != "North Campus" {
		t.Errorf("HomeBase = %q, prior answer was lost", p.HomeBase)
	}
	if p.FocusTime != profile.FocusMorning {
		t.Errorf("FocusTime = %q, want morning after re-prompts", p.FocusTime)
	}
	if !strings.Contains(out.String(), "Invalid input. Please enter a number.") {
		t.Error("missing corrective message for non-numeric menu input")
	}
}
