// Package prompts builds the provider-facing prompt text for each episode
// workflow. Builders are pure string assembly so the same input always
// produces the same prompt.
package prompts

import (
	"fmt"
	"strings"
)

type ScriptInput struct {
	Series  string
	Title   string
	Premise string
	Tone    string
}

// Script produces the prompt for a full episode script draft.
func Script(in ScriptInput) string {
	var b strings.Builder
	b.WriteString("Write a complete episode script for a serialized show.\n\n")
	fmt.Fprintf(&b, "Series: %s\n", in.Series)
	fmt.Fprintf(&b, "Episode title: %s\n", in.Title)
	fmt.Fprintf(&b, "Premise: %s\n", in.Premise)
	if in.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", in.Tone)
	}
	b.WriteString("\nInclude scene headings, character dialogue, and stage direction. ")
	b.WriteString("Keep continuity with the premise and end on a hook for the next episode.")
	return b.String()
}

// Storyboard produces the prompt for a shot-by-shot storyboard breakdown of
// an existing script.
func Storyboard(script string) string {
	var b strings.Builder
	b.WriteString("Break the following episode script into a storyboard.\n")
	b.WriteString("For each scene, describe the key frames, camera angles, and visual mood.\n\n")
	b.WriteString("Script:\n")
	b.WriteString(script)
	return b.String()
}

// Props produces the prompt for the itemized prop list of a script.
func Props(script string) string {
	var b strings.Builder
	b.WriteString("List every prop required to shoot the following episode script.\n")
	b.WriteString("Group the props by scene and note any that recur across scenes.\n\n")
	b.WriteString("Script:\n")
	b.WriteString(script)
	return b.String()
}

// Locations produces the prompt for the location breakdown of a script.
func Locations(script string) string {
	var b strings.Builder
	b.WriteString("Extract the shooting locations from the following episode script.\n")
	b.WriteString("For each location, describe the setting, time of day, and dressing requirements.\n\n")
	b.WriteString("Script:\n")
	b.WriteString(script)
	return b.String()
}

// Casting produces the prompt for character casting notes.
func Casting(script string) string {
	var b strings.Builder
	b.WriteString("Write casting notes for the characters in the following episode script.\n")
	b.WriteString("For each speaking role, describe age range, personality, and the qualities an actor needs for the part.\n\n")
	b.WriteString("Script:\n")
	b.WriteString(script)
	return b.String()
}

// Marketing produces the prompt for promotional copy about an episode.
func Marketing(series, title, synopsis string) string {
	var b strings.Builder
	b.WriteString("Write promotional copy for an upcoming episode.\n\n")
	fmt.Fprintf(&b, "Series: %s\n", series)
	fmt.Fprintf(&b, "Episode: %s\n", title)
	fmt.Fprintf(&b, "Synopsis: %s\n", synopsis)
	b.WriteString("\nProduce a one-line teaser, a short social post, and a longer blurb for the episode page. ")
	b.WriteString("No spoilers past the midpoint of the episode.")
	return b.String()
}
