package layout

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/model"
)

func loadStandard(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(context.Background(), DefaultRackSize)
	require.NoError(t, err)
	return doc
}

func TestLoadDiscoversAllSlots(t *testing.T) {
	doc := loadStandard(t)

	assert.Len(t, doc.BoardSlots(), model.BoardSize)
	assert.Len(t, doc.RackSlots(), DefaultRackSize)
	for _, id := range []string{TargetClear, TargetGo, TargetDiscard, TargetKeep} {
		assert.True(t, doc.HasCommand(id), id)
	}
	assert.Equal(t, "cell-112", doc.BoardSlots()[112].ID())
	assert.Equal(t, "rack-3", doc.RackSlots()[3].ID())
}

func TestStandardPremiumCounts(t *testing.T) {
	doc := loadStandard(t)

	counts := make(map[model.CellType]int)
	for _, slot := range doc.BoardSlots() {
		counts[Classify(slot)]++
	}

	assert.Equal(t, 1, counts[model.CellStart])
	assert.Equal(t, 8, counts[model.CellTripleWord])
	assert.Equal(t, 16, counts[model.CellDoubleWord])
	assert.Equal(t, 12, counts[model.CellTripleLetter])
	assert.Equal(t, 24, counts[model.CellDoubleLetter])
	assert.Equal(t, model.CellStart, Classify(doc.BoardSlots()[112]))
	assert.Equal(t, model.CellTripleWord, Classify(doc.BoardSlots()[0]))
}

func TestClassifyLastTagWins(t *testing.T) {
	page := standardPageWith(t, func(d *goquery.Document) {
		d.Find("#cell-1").AddClass("start-cell triple-word")
	})
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, model.CellTripleWord, Classify(doc.BoardSlots()[1]))
}

func TestParseRejectsShortBoard(t *testing.T) {
	page := standardPageWith(t, func(d *goquery.Document) {
		d.Find("#cell-224").Remove()
	})

	_, err := Parse(strings.NewReader(page))
	assert.ErrorIs(t, err, model.ErrLayout)
}

func TestParseRejectsMissingLoader(t *testing.T) {
	page := standardPageWith(t, func(d *goquery.Document) {
		d.Find("#loader").Remove()
	})

	_, err := Parse(strings.NewReader(page))
	assert.ErrorIs(t, err, model.ErrLayout)
}

func TestParseAllowsMissingKeepAndDiscard(t *testing.T) {
	page := standardPageWith(t, func(d *goquery.Document) {
		d.Find("#keep").Remove()
		d.Find("#discard").Remove()
	})

	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.False(t, doc.HasCommand(TargetKeep))
	assert.True(t, doc.HasCommand(TargetGo))
}

func TestParseAssignsMissingIDs(t *testing.T) {
	page := standardPageWith(t, func(d *goquery.Document) {
		d.Find("#rack-0").RemoveAttr("id")
	})

	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "rack-0", doc.RackSlots()[0].ID())
}

func TestSlotClaimOnce(t *testing.T) {
	doc := loadStandard(t)
	slot := doc.BoardSlots()[0]

	require.NoError(t, slot.Claim())
	assert.ErrorIs(t, slot.Claim(), model.ErrImmutable)
}

func TestSlotRendersIntoDocument(t *testing.T) {
	doc := loadStandard(t)
	slot := doc.BoardSlots()[112]

	slot.ShowLetter(model.MustLetter('Q'), "letter-point-value")
	slot.SetClass(model.ClassBestMove, true)

	fragment, err := doc.Fragment(RegionBoard)
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	cell := parsed.Find("#cell-112")
	assert.True(t, cell.HasClass(model.ClassBestMove))
	assert.Equal(t, "10", cell.Find(".letter-point-value").Text())
	assert.Equal(t, "Q10", cell.Text())
}

func TestBusyIndicator(t *testing.T) {
	doc := loadStandard(t)
	assert.False(t, doc.Busy())

	doc.SetBusy(true)
	assert.True(t, doc.Busy())

	doc.SetBusy(false)
	assert.False(t, doc.Busy())
}

func TestFragmentUnknownID(t *testing.T) {
	doc := loadStandard(t)
	_, err := doc.Fragment("nope")
	assert.ErrorIs(t, err, model.ErrLayout)
}

func TestPageRejectsBadPremiums(t *testing.T) {
	var b strings.Builder
	err := Page(StandardPremiums[:3], DefaultRackSize).Render(context.Background(), &b)
	assert.ErrorIs(t, err, model.ErrLayout)
}

func TestPageDrawsPremiumSquares(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Page(StandardPremiums, 2).Render(context.Background(), &b))

	d, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)

	tests := []struct {
		id    string
		class string
		glyph string
	}{
		{"cell-0", classTripleWord, "TW"},
		{"cell-3", classDoubleLetter, "DL"},
		{"cell-16", classDoubleWord, "DW"},
		{"cell-20", classTripleLetter, "TL"},
		{"cell-112", classStart, "★"},
		{"cell-1", "", ""},
	}
	for _, tt := range tests {
		cell := d.Find("#" + tt.id)
		require.Equal(t, 1, cell.Length(), tt.id)
		assert.True(t, cell.HasClass(classBoardCell), tt.id)
		if tt.class != "" {
			assert.True(t, cell.HasClass(tt.class), tt.id)
		}
		assert.Equal(t, tt.glyph, cell.Text(), tt.id)
		assert.Equal(t, "/click/"+tt.id, cell.AttrOr("hx-post", ""), tt.id)
	}

	assert.Equal(t, model.Height, d.Find("#game-board tr").Length())
	assert.Equal(t, 2, d.Find("#letter-rack ."+classRackCell).Length())
	assert.Equal(t, "/click/rack-1", d.Find("#rack-1").AttrOr("hx-post", ""))
}

// standardPageWith renders the standard page and lets the test edit it first
func standardPageWith(t *testing.T, edit func(*goquery.Document)) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Page(StandardPremiums, DefaultRackSize).Render(context.Background(), &b))

	d, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	edit(d)

	out, err := goquery.OuterHtml(d.Selection)
	require.NoError(t, err)
	return out
}
