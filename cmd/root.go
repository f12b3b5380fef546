package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guitariz",
	Short: "Chord recognition for fretboard and keyboard input",
	Long:  `Names the chord a set of sounding notes most likely forms, with ranked alternates.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
