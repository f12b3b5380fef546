package cmd

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/abhi9vaidya/Guitariz-sub000/detect"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
	"github.com/abhi9vaidya/Guitariz-sub000/util"
	"github.com/bep/debounce"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenStrict bool

func init() {
	listenCmd.Flags().BoolVar(&listenStrict, "strict", false, "require an exact pitch-class match")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Detects chords from live MIDI input",
	Long:  `Detects chords from live MIDI input, re-detecting on every note on/off`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		logrus.Fatal("no MIDI input port available: " + err.Error())
	}

	pressed := make(map[uint8]bool)

	// note on/off arrive as bursts while a chord is being formed; coalesce
	// them so detection runs once per hand movement
	deb := debounce.New(50 * time.Millisecond)

	report := func(set model.PitchClassSet) {
		candidates := detect.Chords(set, cliOptions(listenStrict, 3, 2))

		log := logrus.WithField("notes", strings.Join(pitch.ClassNames(set), " "))
		if len(candidates) == 0 {
			log.Info("no chord detected")
			return
		}
		best := candidates[0]
		if len(best.AlternateNames) > 0 {
			log = log.WithField("also", strings.Join(best.AlternateNames, ", "))
		}
		log.WithFields(logrus.Fields{
			"chord": best.Name,
			"score": best.Score,
		}).Info("chord")
	}

	// the debounced func runs on its own goroutine, so snapshot the pressed
	// set here instead of letting it read the map late
	redetect := func() {
		set := model.NewPitchClassSet(util.SortedKeys(pressed)...)
		deb(func() { report(set) })
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed[key] = true
			redetect()
		case msg.GetNoteEnd(&ch, &key):
			delete(pressed, key)
			redetect()
		default:
			// ignore
		}
	})

	if err != nil {
		logrus.Fatal("could not listen to MIDI input: " + err.Error())
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
