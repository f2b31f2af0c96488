// Command export writes the tessellated test case meshes to JSON, for
// inspection and for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	t := stroke.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(t, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Polyline  []float64   `json:"polyline"`
	Op        string      `json:"op"`
	Thickness float64     `json:"thickness,omitempty"`
	Endcap    string      `json:"endcap,omitempty"`
	Join      string      `json:"join,omitempty"`
	CapRes    float64     `json:"endcap_resolution,omitempty"`
	JoinRes   float64     `json:"join_resolution,omitempty"`
	Mode      string      `json:"mode"`
	Count     int         `json:"count"`
	Vertices  [][]float32 `json:"vertices"`
}

func toJSON(t *stroke.Tessellator, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Polyline: tc.Polyline(),
	}

	switch op := tc.Op.(type) {
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.Thickness = op.Style.Thickness
		jtc.Endcap = op.Style.Endcap.String()
		jtc.Join = op.Style.Join.String()
		jtc.CapRes = op.Style.EndcapResolution
		jtc.JoinRes = op.Style.JoinResolution
	case testcases.Line:
		jtc.Op = "line"
	}

	m, err := tc.Tessellate(t)
	if err != nil {
		return jtc, err
	}
	jtc.Mode = m.Mode().String()
	jtc.Count = m.Len()
	jtc.Vertices = make([][]float32, 0, m.Len())
	v := m.Vertices()
	for i := 0; i+1 < len(v); i += 2 {
		jtc.Vertices = append(jtc.Vertices, []float32{v[i], v[i+1]})
	}
	return jtc, nil
}
