package cmd

import (
	"fmt"
	"strings"

	"github.com/abhi9vaidya/Guitariz-sub000/detect"
	"github.com/abhi9vaidya/Guitariz-sub000/midi"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var analyzeStrict bool
var analyzeMax int

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", false, "require an exact pitch-class match")
	analyzeCmd.Flags().IntVar(&analyzeMax, "max", 3, "maximum candidates per chord change")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [midi file]",
	Short: "Prints the chord timeline of a MIDI file",
	Long:  `Prints the chord timeline of a MIDI file, re-detecting at every note-set change`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(args[0])
	},
}

func analyzeLine(snap midi.Snapshot, candidates []model.ChordCandidate) string {
	name := "N.C."
	var alts []string
	if len(candidates) > 0 {
		name = fmt.Sprintf("%v (%d%%)", candidates[0].Name, candidates[0].Score)
		// copy: appending the runner-up names must not scribble on the
		// candidate's own alternate list
		alts = append([]string(nil), candidates[0].AlternateNames...)
		for _, c := range candidates[1:] {
			alts = append(alts, fmt.Sprintf("%v (%d%%)", c.Name, c.Score))
		}
	}

	line := fmt.Sprintf("%8.3fs  %-14s %v",
		float64(snap.OffsetMs)/1000,
		strings.Join(pitch.ClassNames(snap.Sounding), " "),
		name)
	if len(alts) > 0 {
		line += "  also: " + strings.Join(alts, ", ")
	}
	return line
}

func analyze(path string) {
	s, err := midi.ReadFile(path)
	if err != nil {
		logrus.WithField("path", path).Fatal("could not read midi file: " + err.Error())
	}

	opts := cliOptions(analyzeStrict, analyzeMax, 2)
	for _, snap := range midi.Snapshots(s) {
		fmt.Println(analyzeLine(snap, detect.Chords(snap.Sounding, opts)))
	}
}
