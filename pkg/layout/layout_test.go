package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="80" id="root">
  <g id="ring">
    <circle id="Ring" class="Ring TouchRing"/>
    <path id="LeaderRingCW" class="RingCW  Ring Leader"/>
  </g>
  <text id="LabelRingCW" class="RingCW Ring Label">CW</text>
  <rect id="dup"/>
  <rect id="dup"/>
</svg>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)

	assert.True(t, doc.Root.IsSVG())
	assert.Equal(t, SVGNamespace, doc.Root.Name.Space)

	w, ok := doc.Root.Attr("width")
	assert.True(t, ok)
	assert.Equal(t, "100", w)

	_, ok = doc.Root.Attr("viewBox")
	assert.False(t, ok)
}

func TestFindByID(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)

	ring := doc.FindByID("Ring")
	require.Len(t, ring, 1)
	assert.Equal(t, []string{"Ring", "TouchRing"}, ring[0].Classes())
	assert.True(t, ring[0].HasClass("TouchRing"))
	assert.False(t, ring[0].HasClass("Touch"))

	leader := doc.FindByID("LeaderRingCW")
	require.Len(t, leader, 1)
	assert.Equal(t, []string{"RingCW", "Ring", "Leader"}, leader[0].Classes())

	assert.Len(t, doc.FindByID("dup"), 2)
	assert.Empty(t, doc.FindByID("missing"))

	// the root element is not a candidate
	assert.Empty(t, doc.FindByID("root"))
}

func TestIDs(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)

	assert.Equal(t, []string{"ring", "Ring", "LeaderRingCW", "LabelRingCW", "dup", "dup"}, doc.IDs())
}

func TestParseBareSVG(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg width="1" height="1"/>`))
	require.NoError(t, err)
	assert.True(t, doc.Root.IsSVG())
	assert.Empty(t, doc.Root.Name.Space)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoRoot))

	_, err = Parse(strings.NewReader("<svg><g></svg>"))
	assert.Error(t, err)

	_, err = ParseWithOptions(strings.NewReader("<svg><g><g/></g></svg>"), ParseOptions{MaxDepth: 2})
	assert.True(t, errors.Is(err, ErrTooDeep))
}

func TestParseCharset(t *testing.T) {
	// "Ä" in ISO-8859-1
	data := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text id=\"T\" class=\"\xc4\"/></svg>"
	doc, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	els := doc.FindByID("T")
	require.Len(t, els, 1)
	assert.Equal(t, []string{"Ä"}, els[0].Classes())
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.svg"), []byte(sampleSVG), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.svg"), []byte("<svg"), 0644))

	l := NewLoader(dir, nil)

	assert.NotNil(t, l.Load("ok.svg"))
	assert.Nil(t, l.Load("broken.svg"))
	assert.Nil(t, l.Load("missing.svg"))
	assert.Nil(t, l.Load(""))

	_, err := l.Open("missing.svg")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestIsAutogenerated(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen.tablet"),
		[]byte("# this file is autogenerated by a tool\n[Device]\nName=Gen\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hand.tablet"),
		[]byte("[Device]\nName=Hand\n"), 0644))

	assert.True(t, IsAutogenerated(dir, "gen.svg"))
	assert.True(t, IsAutogenerated(dir, "layouts/gen.svg"))
	assert.False(t, IsAutogenerated(dir, "hand.svg"))
	assert.False(t, IsAutogenerated(dir, "missing.svg"))
	assert.False(t, IsAutogenerated(dir, ""))
}

func TestDescriptorPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "intuos.tablet"), DescriptorPath("data", "sub/intuos.svg"))
}
