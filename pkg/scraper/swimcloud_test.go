package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const sampleHTML = `
<html><body>
<section id="js-region-top-swims-container">
  <div class="js-top-swims-form-content">
    <div class="col-sm-6">
      <h3 class="c-title">Men</h3>
      <table class="c-table-clean"><tbody>
        <tr>
          <td>1</td>
          <td><a href="/swimmer/1">Luka Mijatovic</a><div class="u-color-mute">Pleasanton Seahawks</div></td>
          <td><a href="/team/1" title="Pleasanton Seahawks"><img alt="Pleasanton Seahawks logo"></a></td>
          <td>400 Free</td>
          <td>3:45.30</td>
          <td>932</td>
        </tr>
        <tr>
          <td></td>
          <td><a href="/swimmer/2">Second Swimmer</a></td>
          <td><a href="/team/2"><img alt="Aqua Club logo"></a></td>
          <td>50 Back</td>
          <td>24.80</td>
          <td>901</td>
        </tr>
        <tr>
          <td>3</td>
          <td></td>
          <td></td>
          <td>100 Fly</td>
          <td>52.00</td>
          <td>880</td>
        </tr>
      </tbody></table>
    </div>
    <div class="col-sm-6">
      <h3 class="c-title">Women</h3>
      <table class="c-table-clean"><tbody>
        <tr>
          <td>1</td>
          <td><a href="/swimmer/3">Ana Silva</a></td>
          <td><a href="/team/3" title="Harbour Dolphins"></a></td>
          <td>200 IM</td>
          <td>2:10.55</td>
          <td>915</td>
        </tr>
      </tbody></table>
    </div>
  </div>
</section>
</body></html>`

func TestParseTopSwims(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	client := NewSwimcloudClient(zap.NewNop())
	result := client.parse(doc)

	// The nameless third row is dropped.
	if len(result.Men) != 2 {
		t.Fatalf("men rows = %d, want 2", len(result.Men))
	}
	if len(result.Women) != 1 {
		t.Fatalf("women rows = %d, want 1", len(result.Women))
	}

	first := result.Men[0]
	if first.Rank != "1" || first.Name != "Luka Mijatovic" || first.Club != "Pleasanton Seahawks" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Event != "400 Free" || first.Time != "3:45.30" || first.Score != "932" {
		t.Errorf("unexpected first row stats: %+v", first)
	}

	// Empty rank falls back to the row position; club falls back to the logo alt.
	second := result.Men[1]
	if second.Rank != "2" {
		t.Errorf("second rank = %q, want fallback \"2\"", second.Rank)
	}
	if second.Club != "Aqua Club" {
		t.Errorf("second club = %q, want \"Aqua Club\"", second.Club)
	}

	// Club from the team link title when the mobile div is absent.
	if result.Women[0].Club != "Harbour Dolphins" {
		t.Errorf("women club = %q", result.Women[0].Club)
	}
}

func TestParseMissingSection(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	client := NewSwimcloudClient(zap.NewNop())
	result := client.parse(doc)

	if len(result.Men) != 0 || len(result.Women) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestParseRowLimit(t *testing.T) {
	var rows strings.Builder
	for i := 0; i < 8; i++ {
		rows.WriteString(`<tr><td></td><td><a>Swimmer</a></td><td></td><td>50 Free</td><td>22.00</td><td>900</td></tr>`)
	}
	html := `<section id="js-region-top-swims-container"><div class="js-top-swims-form-content"><div class="col-sm-6">` +
		`<h3 class="c-title">Men</h3><table class="c-table-clean"><tbody>` + rows.String() +
		`</tbody></table></div></div></section>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	client := NewSwimcloudClient(zap.NewNop())
	result := client.parse(doc)

	if len(result.Men) != 5 {
		t.Errorf("men rows = %d, want capped at 5", len(result.Men))
	}
}
