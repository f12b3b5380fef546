//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhi9vaidya/Guitariz-sub000/cmd"
	"github.com/abhi9vaidya/Guitariz-sub000/model"
	"github.com/stretchr/testify/assert"
)

func createDetectReqBody(t *testing.T, body model.DetectRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err.Error())
	}
	return bytes.NewReader(data)
}

func postDetect(t *testing.T, body io.Reader) (*http.Response, model.DetectResponse) {
	req := httptest.NewRequest(http.MethodPost, "/detect", body)
	w := httptest.NewRecorder()
	cmd.HandleDetect(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	var detectResponse model.DetectResponse
	if err := json.Unmarshal(respBody, &detectResponse); err != nil {
		t.Fatal(err.Error())
	}
	return resp, detectResponse
}

func TestBasicCChordE2E(t *testing.T) {
	body := createDetectReqBody(t, model.DetectRequestBody{Notes: []uint8{60, 64, 67}})
	resp, detectResponse := postDetect(t, body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.NotEmpty(detectResponse.RequestId)
	assert.Equal(detectResponse.PitchClasses, []string{"C", "E", "G"})
	assert.NotEmpty(detectResponse.Candidates)
	assert.Equal(detectResponse.Candidates[0].Name, "C Major")
	assert.Equal(detectResponse.Candidates[0].Score, 100)
}

func TestFrettedCChordE2E(t *testing.T) {
	// the open C major shape: x32010
	body := createDetectReqBody(t, model.DetectRequestBody{
		Frets: []model.FretPress{
			{String: 1, Fret: 3},
			{String: 2, Fret: 2},
			{String: 3, Fret: 0},
			{String: 4, Fret: 1},
			{String: 5, Fret: 0},
		},
	})
	resp, detectResponse := postDetect(t, body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Equal(detectResponse.PitchClasses, []string{"C", "E", "G"})
	assert.Equal(detectResponse.Candidates[0].Name, "C Major")
}

func TestStrictOptionsE2E(t *testing.T) {
	body := createDetectReqBody(t, model.DetectRequestBody{
		Notes: []uint8{60, 64, 67, 70},
		Options: &model.OptionsBody{
			Strictness:    "strict",
			MaxCandidates: 3,
			MinNotes:      2,
		},
	})
	resp, detectResponse := postDetect(t, body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Len(detectResponse.Candidates, 1)
	assert.Equal(detectResponse.Candidates[0].Name, "C7")
}

func TestEmptyNotesE2E(t *testing.T) {
	body := createDetectReqBody(t, model.DetectRequestBody{})
	resp, detectResponse := postDetect(t, body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Empty(detectResponse.Candidates)
	assert.Empty(detectResponse.PitchClasses)
}

func TestMalformedBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/detect", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	cmd.HandleDetect(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestTemplatesE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	w := httptest.NewRecorder()
	cmd.HandleTemplates(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	var templates []model.TemplateResult
	if err := json.Unmarshal(respBody, &templates); err != nil {
		t.Fatal(err.Error())
	}

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.GreaterOrEqual(len(templates), 12)
	names := make(map[string]bool)
	for _, tmpl := range templates {
		names[tmpl.Name] = true
	}
	assert.True(names["Major"])
	assert.True(names["Dominant 7"])
}
