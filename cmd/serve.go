package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/abhi9vaidya/Guitariz-sub000/catalog"
	"github.com/abhi9vaidya/Guitariz-sub000/constants"
	"github.com/abhi9vaidya/Guitariz-sub000/db"
	"github.com/abhi9vaidya/Guitariz-sub000/detect"
	"github.com/abhi9vaidya/Guitariz-sub000/fretboard"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/abhi9vaidya/Guitariz-sub000/pitch"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the detection API",
	Long:  `Serves the detection API over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func optionsFromBody(body *model.OptionsBody) model.DetectionOptions {
	if body == nil {
		return model.DetectionOptions{AllowInversions: true}
	}
	strictness := model.Lenient
	if body.Strictness == string(model.Strict) {
		strictness = model.Strict
	}
	return model.DetectionOptions{
		Strictness:      strictness,
		MaxCandidates:   body.MaxCandidates,
		MinNotes:        body.MinNotes,
		AllowInversions: body.AllowInversions,
	}
}

// enrich attaches metadata records to candidate results when a metadata
// endpoint is configured. Lookup failures only cost the enrichment.
func enrich(candidates []model.ChordCandidate, results []model.CandidateResult) {
	var qualities []string
	for _, c := range candidates {
		qualities = append(qualities, c.Quality)
	}
	metadatas, err := db.GetChordMetadatas(qualities)
	if err != nil {
		logrus.Warn("chord metadata lookup failed: " + err.Error())
		return
	}
	for i, c := range candidates {
		if m, ok := metadatas[c.Quality]; ok {
			results[i].Metadata = &m
		}
	}
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.DetectRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	var events []pitch.NoteEvent
	for _, n := range input.Notes {
		events = append(events, pitch.MidiNote(n))
	}
	for _, fp := range input.Frets {
		events = append(events, fretboard.Press{String: fp.String, Fret: fp.Fret})
	}

	set := pitch.Normalize(events)
	candidates := detect.Chords(set, optionsFromBody(input.Options))

	results := make([]model.CandidateResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, model.CandidateResult{
			Name:           c.Name,
			Root:           pitch.ClassName(c.Root),
			Score:          c.Score,
			Matched:        pitch.ClassNames(c.Matched),
			Missing:        pitch.ClassNames(c.Missing),
			Extra:          pitch.ClassNames(c.Extra),
			AlternateNames: c.AlternateNames,
		})
	}
	enrich(candidates, results)

	resp := model.DetectResponse{
		RequestId:    uuid.New().String(),
		PitchClasses: pitch.ClassNames(set),
		Candidates:   results,
	}

	logrus.WithFields(logrus.Fields{
		"request_id": resp.RequestId,
		"notes":      resp.PitchClasses,
		"candidates": len(results),
	}).Info("detect")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	res := make([]model.TemplateResult, 0, len(catalog.All))
	for _, t := range catalog.All {
		intervals := make([]int, 0, len(t.Intervals))
		for _, i := range t.Intervals {
			intervals = append(intervals, int(i))
		}
		res = append(res, model.TemplateResult{
			Name:      t.Name,
			Intervals: intervals,
			Weight:    t.Weight,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/detect", HandleDetect).Methods("POST")
	router.HandleFunc("/templates", HandleTemplates).Methods("GET")
	handler := cors.Default().Handler(router)

	port := constants.GetPort()
	logrus.WithField("port", port).Info("listening")
	logrus.Fatal(http.ListenAndServe(":"+port, handler))
}
