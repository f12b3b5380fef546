package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhi9vaidya/Guitariz-sub000/detect"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
	"github.com/spf13/cobra"
)

var detectStrict bool
var detectMax int
var detectMinNotes int

func init() {
	detectCmd.Flags().BoolVar(&detectStrict, "strict", false, "require an exact pitch-class match")
	detectCmd.Flags().IntVar(&detectMax, "max", 5, "maximum candidates to print")
	detectCmd.Flags().IntVar(&detectMinNotes, "min-notes", 2, "minimum distinct pitch classes")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [notes...]",
	Short: "Detects a chord from note names or MIDI numbers",
	Long:  `Detects a chord from note names or MIDI numbers, e.g. "detect C E G" or "detect 60 64 67"`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDetect(args)
	},
}

func parseArgs(args []string) model.PitchClassSet {
	var set model.PitchClassSet
	var events []pitch.NoteEvent
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			events = append(events, pitch.MidiNote(n))
			continue
		}
		if pc, ok := pitch.ParseClass(arg); ok {
			set = set.Add(pc)
			continue
		}
		fmt.Printf("Skipping unrecognized note: %v\n", arg)
	}
	return set.Union(pitch.Normalize(events))
}

func cliOptions(strict bool, max int, minNotes int) model.DetectionOptions {
	strictness := model.Lenient
	if strict {
		strictness = model.Strict
	}
	return model.DetectionOptions{
		Strictness:      strictness,
		MaxCandidates:   max,
		MinNotes:        minNotes,
		AllowInversions: true,
	}
}

func printCandidates(set model.PitchClassSet, candidates []model.ChordCandidate) {
	fmt.Printf("notes: %v\n", strings.Join(pitch.ClassNames(set), " "))
	if len(candidates) == 0 {
		fmt.Println("no chord detected")
		return
	}
	for i, c := range candidates {
		line := fmt.Sprintf("%d. %v (%d%%)", i+1, c.Name, c.Score)
		if len(c.AlternateNames) > 0 {
			line += fmt.Sprintf("  also: %v", strings.Join(c.AlternateNames, ", "))
		}
		fmt.Println(line)
	}
}

func runDetect(args []string) {
	set := parseArgs(args)
	candidates := detect.Chords(set, cliOptions(detectStrict, detectMax, detectMinNotes))
	printCandidates(set, candidates)
}
